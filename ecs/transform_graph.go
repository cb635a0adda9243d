// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package ecs

import "github.com/go-gl/mathgl/mgl32"

// WorldTransform is the component a TransformGraph writes its
// computed world matrices into. Subrenderers read it via a normal
// registry query; nothing about it is graph-specific.
type WorldTransform struct {
	Matrix mgl32.Mat4
	Normal mgl32.Mat3
}

type transformLink struct {
	parent, next, prev, child Entity
	local                     mgl32.Mat4
	world                     mgl32.Mat4
	dirty                     bool
}

// TransformGraph is a forest of entities whose world transforms are
// derived from their local transform and their ancestors' world
// transforms. Update visits every node but recomputes only those in a
// subtree rooted at a changed node, using an explicit stack rather
// than recursion, mirroring the
// traversal the engine's original scene graph used.
type TransformGraph struct {
	links map[Entity]*transformLink
	root  Entity // head of the linked list of unconnected (root) entities

	global      mgl32.Mat4
	globalSet   bool
	globalDirty bool

	stkEntity  []Entity
	stkParent  []Entity
	stkChanged []bool
}

// NewTransformGraph creates an empty graph. The zero value is not
// usable; always construct via this function so the global transform
// defaults to identity.
func NewTransformGraph() *TransformGraph {
	return &TransformGraph{links: make(map[Entity]*transformLink), global: mgl32.Ident4()}
}

func (g *TransformGraph) link(e Entity) *transformLink {
	l, ok := g.links[e]
	if !ok {
		l = &transformLink{local: mgl32.Ident4(), world: mgl32.Ident4()}
		g.links[e] = l
	}
	return l
}

// Insert adds e to the graph as a child of parent, or as a root if
// parent is Null. e must not already be present in the graph.
func (g *TransformGraph) Insert(e Entity, parent Entity, local mgl32.Mat4) {
	l := g.link(e)
	l.local = local
	l.dirty = true
	if parent != Null {
		pl := g.link(parent)
		if sibling := pl.child; sibling != Null {
			l.next = sibling
			g.link(sibling).prev = e
		}
		l.prev = parent
		pl.child = e
	} else {
		if g.root != Null {
			g.link(g.root).prev = e
			l.next = g.root
		}
		l.prev = Null
		g.root = e
	}
}

// Remove deletes e and every descendant from the graph, returning the
// full set of removed entities (e first, then descendants).
func (g *TransformGraph) Remove(e Entity) []Entity {
	l, ok := g.links[e]
	if !ok {
		return nil
	}
	next, prev, child := l.next, l.prev, l.child
	if g.root == e {
		g.root = next
	}
	if prev != Null {
		if p := g.links[prev]; p.child == e {
			p.child = next
		} else {
			p.next = next
		}
	}
	if next != Null {
		g.links[next].prev = prev
	}
	removed := []Entity{e}
	delete(g.links, e)
	if child != Null {
		stack := []Entity{child}
		for len(stack) > 0 {
			last := len(stack) - 1
			cur := stack[last]
			stack = stack[:last]
			cl := g.links[cur]
			removed = append(removed, cur)
			if cl.next != Null {
				stack = append(stack, cl.next)
			}
			if cl.child != Null {
				stack = append(stack, cl.child)
			}
			delete(g.links, cur)
		}
	}
	return removed
}

// SetLocal replaces e's local transform and marks it (and therefore
// its subtree) dirty for the next Update.
func (g *TransformGraph) SetLocal(e Entity, local mgl32.Mat4) {
	l := g.link(e)
	l.local = local
	l.dirty = true
}

// World returns e's last-computed world transform. It is not
// necessarily up to date until Update has been called.
func (g *TransformGraph) World(e Entity) mgl32.Mat4 {
	if l, ok := g.links[e]; ok {
		return l.world
	}
	return g.global
}

// SetGlobal sets the transform applied to every root entity. Since it
// affects the whole forest, it marks every root dirty.
func (g *TransformGraph) SetGlobal(w mgl32.Mat4) {
	g.global = w
	g.globalSet = true
	g.globalDirty = true
}

func (g *TransformGraph) pushNode() []Entity {
	return g.stkEntity[:0]
}

func (g *TransformGraph) pushParent() []Entity {
	return g.stkParent[:0]
}

func (g *TransformGraph) pushChanged() []bool {
	return g.stkChanged[:0]
}

// Update recomputes world transforms for every subtree rooted at a
// node whose local transform changed since the last call, writing the
// result into dst (typically the registry's WorldTransform storage)
// for every entity it touches.
func (g *TransformGraph) Update(dst *Storage[WorldTransform]) {
	for n := g.root; n != Null; n = g.links[n].next {
		l := g.links[n]
		changed := l.dirty || g.globalDirty
		if changed {
			if g.globalSet {
				l.world = g.global.Mul4(l.local)
			} else {
				l.world = l.local
			}
			g.writeBack(dst, n, l.world)
		}
		l.dirty = false
		if l.child == Null {
			continue
		}
		nstk := append(g.pushNode(), l.child)
		pstk := append(g.pushParent(), n)
		cstk := append(g.pushChanged(), changed)
		for len(nstk) > 0 {
			last := len(nstk) - 1
			cur := nstk[last]
			nstk = nstk[:last]
			parent := pstk[last]
			pstk = pstk[:last]
			chg := cstk[last]
			cstk = cstk[:last]
			for {
				cl := g.links[cur]
				if cl.next != Null {
					nstk = append(nstk, cl.next)
					pstk = append(pstk, parent)
					cstk = append(cstk, chg)
				}
				chg = chg || cl.dirty
				if chg {
					cl.world = g.links[parent].world.Mul4(cl.local)
					g.writeBack(dst, cur, cl.world)
				}
				cl.dirty = false
				if cl.child != Null {
					parent = cur
					cur = cl.child
				} else {
					break
				}
			}
		}
		g.stkEntity = nstk
		g.stkParent = pstk
		g.stkChanged = cstk
	}
	g.globalDirty = false
}

func (g *TransformGraph) writeBack(dst *Storage[WorldTransform], e Entity, world mgl32.Mat4) {
	if dst == nil {
		return
	}
	normal := mgl32.Mat3FromCols(world.Col(0).Vec3(), world.Col(1).Vec3(), world.Col(2).Vec3()).Inv().Transpose()
	if c, err := dst.Get(e); err == nil {
		c.Matrix = world
		c.Normal = normal
		return
	}
	_, _ = dst.Emplace(e, WorldTransform{Matrix: world, Normal: normal})
}

// Len returns the number of entities currently tracked by the graph.
func (g *TransformGraph) Len() int { return len(g.links) }
