// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package rendergraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KabelitzJ/sandbox-sub000/driver"
)

func newTestBuilder() *GraphBuilder {
	return NewGraphBuilder(driver.D32f, driver.BGRA8un, 1920, 1080)
}

// S3 — Render-graph ordering: pass A produces "depth" and "albedo";
// pass B uses "albedo" and produces "resolve"; pass C uses "resolve"
// and produces "swapchain". Scheduler output must be [A, B, C].
func TestGraphSchedulingOrder(t *testing.T) {
	gb := newTestBuilder()
	gb.Pass("A").
		Produces(Produced{Name: "depth", Type: AttachmentDepth}).
		Produces(Produced{Name: "albedo", Type: AttachmentImage, Format: driver.RGBA8un}).
		Viewport(Fixed(1920, 1080))
	gb.Pass("B").
		Uses("albedo").
		Produces(Produced{Name: "resolve", Type: AttachmentImage, Format: driver.RGBA8un}).
		Viewport(Fixed(1920, 1080))
	gb.Pass("C").
		Uses("resolve").
		Produces(Produced{Name: "swapchain", Type: AttachmentSwapchain}).
		Viewport(Fixed(1920, 1080))

	g, ids, err := gb.Build()
	require.NoError(t, err)
	require.Equal(t, PassID(0), ids["A"])
	require.Equal(t, PassID(1), ids["B"])
	require.Equal(t, PassID(2), ids["C"])

	schedule := g.Schedule()
	require.Len(t, schedule, 3)
	require.Equal(t, "A", schedule[0].Name)
	require.Equal(t, "B", schedule[1].Name)
	require.Equal(t, "C", schedule[2].Name)
}

func TestGraphDuplicateProducer(t *testing.T) {
	gb := newTestBuilder()
	gb.Pass("A").
		Uses().
		Produces(Produced{Name: "swapchain", Type: AttachmentSwapchain}).
		Viewport(Fixed(1, 1))
	gb.Pass("E").
		Uses().
		Produces(Produced{Name: "swapchain", Type: AttachmentSwapchain}).
		Viewport(Fixed(1, 1))

	_, _, err := gb.Build()
	var dup *DuplicateProducer
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "swapchain", dup.Name)
}

func TestGraphUnresolvedAttachment(t *testing.T) {
	gb := newTestBuilder()
	gb.Pass("B").Uses("albedo").Viewport(Fixed(1, 1))

	_, _, err := gb.Build()
	var unresolved *UnresolvedAttachment
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, "albedo", unresolved.Name)
}

func TestGraphCyclicDependency(t *testing.T) {
	gb := newTestBuilder()
	gb.Pass("A").
		Uses("b-out").
		Produces(Produced{Name: "a-out", Type: AttachmentImage}).
		Viewport(Fixed(1, 1))
	gb.Pass("B").
		Uses("a-out").
		Produces(Produced{Name: "b-out", Type: AttachmentImage}).
		Viewport(Fixed(1, 1))

	_, _, err := gb.Build()
	var cyclic *CyclicGraph
	require.ErrorAs(t, err, &cyclic)
}

func TestGraphDynamicViewportNeedsProducer(t *testing.T) {
	gb := newTestBuilder()
	gb.Pass("A").Viewport(Dynamic())

	_, _, err := gb.Build()
	var undefined *UndefinedViewport
	require.ErrorAs(t, err, &undefined)
}

func TestGraphWindowViewportScalesSwapchain(t *testing.T) {
	gb := newTestBuilder()
	gb.Pass("A").
		Produces(Produced{Name: "half", Type: AttachmentImage, Format: driver.RGBA8un}).
		Viewport(Window(0.5, 0.5))

	g, _, err := gb.Build()
	require.NoError(t, err)
	vp := g.Schedule()[0].Viewport
	require.Equal(t, uint32(960), vp.Width)
	require.Equal(t, uint32(540), vp.Height)
}

func TestGraphDynamicViewportUsesFirstProducedExtent(t *testing.T) {
	gb := newTestBuilder()
	gb.Pass("shadow").
		Produces(Produced{Name: "shadow-depth", Type: AttachmentDepth, Width: 2048, Height: 2048}).
		Viewport(Dynamic())

	g, _, err := gb.Build()
	require.NoError(t, err)
	vp := g.Schedule()[0].Viewport
	require.Equal(t, uint32(2048), vp.Width)
	require.Equal(t, uint32(2048), vp.Height)
}
