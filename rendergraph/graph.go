// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package rendergraph

import "github.com/KabelitzJ/sandbox-sub000/driver"

// PassID identifies a pass within a built Graph's schedule.
type PassID int

// ResolvedPass is a pass after Build has computed its execution
// position, attachment formats/clears/loads, and viewport.
type ResolvedPass struct {
	Name     string
	Produces []resolvedAttachment
	Uses     []string
	Viewport ResolvedViewport
}

// Graph is the immutable, scheduled result of a GraphBuilder.Build
// call.
type Graph struct {
	schedule []ResolvedPass
}

// Schedule returns the passes in their resolved execution order.
func (g *Graph) Schedule() []ResolvedPass { return g.schedule }

// Pass returns the resolved pass for id.
func (g *Graph) Pass(id PassID) ResolvedPass { return g.schedule[id] }

// Len returns the number of passes in the graph.
func (g *Graph) Len() int { return len(g.schedule) }

// Build resolves the declared passes into an ordered, attachment- and
// viewport-resolved Graph, plus a name→PassID index for binding
// subrenderers to passes by name.
func (gb *GraphBuilder) Build() (*Graph, map[string]PassID, error) {
	producerOf := make(map[string]int) // attachment name -> declaring pass order
	for _, p := range gb.passes {
		for _, a := range p.produces {
			if _, dup := producerOf[a.Name]; dup {
				return nil, nil, &DuplicateProducer{Name: a.Name}
			}
			producerOf[a.Name] = p.order
		}
	}

	n := len(gb.passes)
	adjacency := make([][]int, n)
	indegree := make([]int, n)
	consumed := make(map[string]bool)
	for _, p := range gb.passes {
		for _, name := range p.uses {
			producer, ok := producerOf[name]
			if !ok {
				return nil, nil, &UnresolvedAttachment{Name: name}
			}
			adjacency[producer] = append(adjacency[producer], p.order)
			indegree[p.order]++
			consumed[name] = true
		}
	}

	order, err := stableTopoSort(adjacency, indegree)
	if err != nil {
		return nil, nil, err
	}

	extentOf := func(p *declaredPass) func() (uint32, uint32, bool) {
		return func() (uint32, uint32, bool) {
			if len(p.produces) == 0 {
				return 0, 0, false
			}
			w, h := gb.extentOf(p.produces[0])
			return w, h, true
		}
	}

	schedule := make([]ResolvedPass, 0, n)
	names := make(map[string]PassID, n)
	for _, idx := range order {
		p := gb.passes[idx]
		rp := ResolvedPass{Name: p.name, Uses: p.uses}
		for _, a := range p.produces {
			rp.Produces = append(rp.Produces, gb.resolveAttachment(a, consumed[a.Name]))
		}
		vp, err := resolveViewport(p.viewport, gb.swapW, gb.swapH, extentOf(p))
		if err != nil {
			return nil, nil, err
		}
		if p.viewport.Kind == ViewportDynamic && len(p.produces) == 0 {
			return nil, nil, &UndefinedViewport{Pass: p.name}
		}
		rp.Viewport = vp
		names[p.name] = PassID(len(schedule))
		schedule = append(schedule, rp)
	}

	return &Graph{schedule: schedule}, names, nil
}

func (gb *GraphBuilder) extentOf(a Produced) (uint32, uint32) {
	if a.Width != 0 || a.Height != 0 {
		return a.Width, a.Height
	}
	return gb.swapW, gb.swapH
}

func (gb *GraphBuilder) resolveAttachment(a Produced, consumed bool) resolvedAttachment {
	w, h := gb.extentOf(a)
	format := a.Format
	switch a.Type {
	case AttachmentDepth:
		format = gb.depthFormat
	case AttachmentSwapchain:
		format = gb.swapFormat
	}
	load, store := resolveLoadStore(a.Type, consumed)
	clear := driver.ClearValue{}
	switch a.Type {
	case AttachmentDepth:
		clear.Depth = 1
	default:
		clear.Color = a.ClearColor
	}
	return resolvedAttachment{
		Name:   a.Name,
		Type:   a.Type,
		Format: format,
		Extent: [2]uint32{w, h},
		Clear:  clear,
		Load:   load,
		Store:  store,
		Blend:  deriveBlend(a, gb.depthFormat, gb.swapFormat),
	}
}

// stableTopoSort runs Kahn's algorithm, always picking the
// lowest-declaration-order pass among those currently ready, so the
// schedule is deterministic across rebuilds of the same declaration
// sequence (spec.md §4.4 step 1).
func stableTopoSort(adjacency [][]int, indegree []int) ([]int, error) {
	n := len(indegree)
	remaining := append([]int(nil), indegree...)
	done := make([]bool, n)
	order := make([]int, 0, n)

	for len(order) < n {
		next := -1
		for i := 0; i < n; i++ {
			if !done[i] && remaining[i] == 0 {
				next = i
				break
			}
		}
		if next == -1 {
			return nil, &CyclicGraph{}
		}
		done[next] = true
		order = append(order, next)
		for _, dep := range adjacency[next] {
			remaining[dep]--
		}
	}
	return order, nil
}
