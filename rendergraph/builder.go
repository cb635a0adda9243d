// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package rendergraph

import "github.com/KabelitzJ/sandbox-sub000/driver"

// declaredPass is a pass as declared through the builder, before
// Build resolves it.
type declaredPass struct {
	name     string
	order    int
	produces []Produced
	uses     []string
	viewport Viewport
}

// GraphBuilder accumulates pass declarations. Re-architected from the
// source's variadic-lambda-over-context style into an explicit,
// method-chained builder (spec.md §9).
type GraphBuilder struct {
	passes       []*declaredPass
	byName       map[string]int
	depthFormat  driver.PixelFmt
	swapFormat   driver.PixelFmt
	swapW, swapH uint32
}

// NewGraphBuilder creates a builder. depthFormat and swapchainFormat
// are used to resolve Depth/Swapchain produced attachments;
// swapchainWidth/Height resolve Window-kind viewports and the default
// extent of attachments that don't override Width/Height.
func NewGraphBuilder(depthFormat, swapchainFormat driver.PixelFmt, swapchainWidth, swapchainHeight uint32) *GraphBuilder {
	return &GraphBuilder{
		byName:      make(map[string]int),
		depthFormat: depthFormat,
		swapFormat:  swapchainFormat,
		swapW:       swapchainWidth,
		swapH:       swapchainHeight,
	}
}

// PassBuilder declares a single pass's produced/used attachments and
// viewport.
type PassBuilder struct {
	gb *GraphBuilder
	p  *declaredPass
}

// Pass begins declaring a new pass named name. Declaration order is
// significant: it is the stable tie-break used by the scheduler.
func (gb *GraphBuilder) Pass(name string) *PassBuilder {
	p := &declaredPass{name: name, order: len(gb.passes)}
	gb.passes = append(gb.passes, p)
	gb.byName[name] = p.order
	return &PassBuilder{gb: gb, p: p}
}

// Produces registers an attachment this pass writes.
func (pb *PassBuilder) Produces(a Produced) *PassBuilder {
	pb.p.produces = append(pb.p.produces, a)
	return pb
}

// Uses registers attachment names this pass reads; each must be
// produced by some other pass (checked at Build time).
func (pb *PassBuilder) Uses(names ...string) *PassBuilder {
	pb.p.uses = append(pb.p.uses, names...)
	return pb
}

// Viewport sets this pass's viewport declaration.
func (pb *PassBuilder) Viewport(v Viewport) *PassBuilder {
	pb.p.viewport = v
	return pb
}
