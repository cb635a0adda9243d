// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package render

import (
	"github.com/KabelitzJ/sandbox-sub000/driver"
	"github.com/KabelitzJ/sandbox-sub000/internal/elog"
	"github.com/KabelitzJ/sandbox-sub000/rendergraph"
)

// PassBinding associates a scheduled render-graph pass with the
// subrenderers bound to it, in bind order.
type PassBinding struct {
	Pass         rendergraph.PassID
	Subrenderers []Subrenderer
}

// Executor walks a resolved render graph once per frame: it calls
// every bound subrenderer's Update first, then records each pass's
// Render calls in schedule order. It
// implements spec.md §7's propagation policy: a frame-time error
// recording one pass is logged and that pass is skipped, the frame
// continues with the next one.
type Executor struct {
	graph    *rendergraph.Graph
	bindings map[rendergraph.PassID][]Subrenderer
}

// NewExecutor builds an executor for graph with the given bindings.
// Passes with no binding are recorded with an empty command list
// (their declared attachments still participate in the pass, but no
// subrenderer contributes draws).
func NewExecutor(graph *rendergraph.Graph, bindings []PassBinding) *Executor {
	e := &Executor{graph: graph, bindings: make(map[rendergraph.PassID][]Subrenderer, len(bindings))}
	for _, b := range bindings {
		e.bindings[b.Pass] = b.Subrenderers
	}
	return e
}

// Run updates every bound subrenderer once, then records and commits
// one pass at a time in schedule order via newCmdBuffer and beginPass.
// beginPass must begin the given pass's render pass on the returned
// command buffer; it is supplied by the caller since turning a
// rendergraph.ResolvedPass into a concrete backend render pass and
// framebuffer is a swapchain/driver-wiring concern out of this
// package's scope.
func (e *Executor) Run(newCmdBuffer func() (driver.CmdBuffer, error), beginPass func(cmd driver.CmdBuffer, pass rendergraph.ResolvedPass)) {
	for _, subrenderers := range e.bindings {
		for _, s := range subrenderers {
			s.Update()
		}
	}

	for id := 0; id < e.graph.Len(); id++ {
		passID := rendergraph.PassID(id)
		pass := e.graph.Pass(passID)

		if err := e.runPass(passID, pass, newCmdBuffer, beginPass); err != nil {
			elog.Frame(pass.Name, "command buffer", err)
		}
	}
}

func (e *Executor) runPass(id rendergraph.PassID, pass rendergraph.ResolvedPass, newCmdBuffer func() (driver.CmdBuffer, error), beginPass func(driver.CmdBuffer, rendergraph.ResolvedPass)) error {
	cmd, err := newCmdBuffer()
	if err != nil {
		return err
	}
	if err := cmd.Begin(); err != nil {
		return err
	}

	beginPass(cmd, pass)
	for _, s := range e.bindings[id] {
		s.Render(cmd)
	}
	cmd.EndPass()

	return cmd.End()
}
