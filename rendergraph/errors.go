// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package rendergraph implements a declarative frame graph: passes
// declare the named attachments they produce and the ones they use,
// and Build resolves an execution order, attachment formats/clear
// values, and per-pass viewports.
package rendergraph

import "fmt"

// UnresolvedAttachment is returned when a pass uses an attachment
// name that no pass produces.
type UnresolvedAttachment struct{ Name string }

func (e *UnresolvedAttachment) Error() string {
	return fmt.Sprintf("rendergraph: unresolved attachment %q", e.Name)
}

// DuplicateProducer is returned when more than one pass produces the
// same attachment name.
type DuplicateProducer struct{ Name string }

func (e *DuplicateProducer) Error() string {
	return fmt.Sprintf("rendergraph: duplicate producer for attachment %q", e.Name)
}

// CyclicGraph is returned when the produce/use dependency graph
// between passes contains a cycle.
type CyclicGraph struct{}

func (e *CyclicGraph) Error() string { return "rendergraph: cyclic pass dependency graph" }

// UndefinedViewport is returned when a pass declares a dynamic
// viewport but produces no attachment to derive an extent from.
type UndefinedViewport struct{ Pass string }

func (e *UndefinedViewport) Error() string {
	return fmt.Sprintf("rendergraph: pass %q has a dynamic viewport but produces nothing", e.Pass)
}
