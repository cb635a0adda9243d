// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package config reads the JSON scene/app/window file and pipeline
// definition overrides the engine loads at startup (spec.md §6).
package config

import (
	"encoding/json"
	"fmt"
	"io"
)

// Version is a three-part app version.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// App is the scene file's app block.
type App struct {
	Name    string  `json:"name"`
	Version Version `json:"version"`
}

// Resolution is a window's pixel size.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Window is the scene file's window block.
type Window struct {
	Resolution   Resolution `json:"resolution"`
	IsFullscreen bool       `json:"is_fullscreen"`
}

// Scene is the top-level scene/config file (spec.md §6 "Scene/config
// file"). Missing config at load time is an init-time error and
// terminates the process per spec.md §7's propagation policy.
type Scene struct {
	App    App    `json:"app"`
	Window Window `json:"window"`
}

// LoadScene decodes a Scene from r.
func LoadScene(r io.Reader) (Scene, error) {
	var s Scene
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Scene{}, fmt.Errorf("config: decode scene: %w", err)
	}
	return s, nil
}

// DepthMode is a pipeline definition's depth-test configuration.
type DepthMode string

const (
	DepthDisabled  DepthMode = "disabled"
	DepthReadWrite DepthMode = "read_write"
	DepthReadOnly  DepthMode = "read_only"
)

// PolygonMode is a pipeline definition's rasterizer fill mode.
type PolygonMode string

const (
	PolygonFill  PolygonMode = "fill"
	PolygonLine  PolygonMode = "line"
	PolygonPoint PolygonMode = "point"
)

// CullMode is a pipeline definition's face-culling mode.
type CullMode string

const (
	CullNone  CullMode = "none"
	CullFront CullMode = "front"
	CullBack  CullMode = "back"
	CullBoth  CullMode = "front_and_back"
)

// FrontFace is a pipeline definition's winding convention for
// front-facing polygons.
type FrontFace string

const (
	FrontCounterClockwise FrontFace = "counter_clockwise"
	FrontClockwise        FrontFace = "clockwise"
)

// RasterizationState is a pipeline definition's rasterizer block.
type RasterizationState struct {
	PolygonMode PolygonMode `json:"polygon_mode"`
	CullMode    CullMode    `json:"cull_mode"`
	FrontFace   FrontFace   `json:"front_face"`
	LineWidth   float32     `json:"line_width"`
}

// PipelineDefinition overrides a pipeline's defaults
// (`<pipeline>/definition.json`, optional per spec.md §6).
type PipelineDefinition struct {
	Depth              DepthMode          `json:"depth"`
	UsesTransparency   bool               `json:"uses_transparency"`
	RasterizationState RasterizationState `json:"rasterization_state"`
	Defines            map[string]string  `json:"defines"`
}

// DefaultPipelineDefinition is applied wherever a pipeline has no
// definition.json, matching the "optional; overrides defaults"
// wording in spec.md §6.
func DefaultPipelineDefinition() PipelineDefinition {
	return PipelineDefinition{
		Depth: DepthReadWrite,
		RasterizationState: RasterizationState{
			PolygonMode: PolygonFill,
			CullMode:    CullBack,
			FrontFace:   FrontCounterClockwise,
			LineWidth:   1,
		},
	}
}

// LoadPipelineDefinition decodes a PipelineDefinition from r, starting
// from DefaultPipelineDefinition so that fields the file omits keep
// their default value.
func LoadPipelineDefinition(r io.Reader) (PipelineDefinition, error) {
	def := DefaultPipelineDefinition()
	dec := json.NewDecoder(r)
	if err := dec.Decode(&def); err != nil {
		return PipelineDefinition{}, fmt.Errorf("config: decode pipeline definition: %w", err)
	}
	return def, nil
}
