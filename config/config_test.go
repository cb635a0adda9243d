// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package config

import (
	"strings"
	"testing"
)

func TestLoadScene(t *testing.T) {
	const doc = `{
		"app": {"name": "sandbox", "version": {"major": 1, "minor": 2, "patch": 3}},
		"window": {"resolution": {"width": 1920, "height": 1080}, "is_fullscreen": false}
	}`

	s, err := LoadScene(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if s.App.Name != "sandbox" || s.App.Version.Minor != 2 {
		t.Fatalf("unexpected app block: %+v", s.App)
	}
	if s.Window.Resolution.Width != 1920 || s.Window.IsFullscreen {
		t.Fatalf("unexpected window block: %+v", s.Window)
	}
}

func TestLoadSceneRejectsUnknownFields(t *testing.T) {
	const doc = `{"app": {"name": "x", "version": {"major": 0, "minor": 0, "patch": 0}}, "bogus": 1}`
	if _, err := LoadScene(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for an unknown top-level field")
	}
}

func TestLoadPipelineDefinitionKeepsDefaults(t *testing.T) {
	const doc = `{"uses_transparency": true}`

	def, err := LoadPipelineDefinition(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadPipelineDefinition: %v", err)
	}
	if !def.UsesTransparency {
		t.Fatal("uses_transparency override did not apply")
	}
	if def.Depth != DepthReadWrite {
		t.Fatalf("expected default depth mode, got %q", def.Depth)
	}
	if def.RasterizationState.CullMode != CullBack {
		t.Fatalf("expected default cull mode, got %q", def.RasterizationState.CullMode)
	}
}
