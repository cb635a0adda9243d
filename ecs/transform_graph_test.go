// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTransformGraphParentPropagation(t *testing.T) {
	r := NewRegistry()
	parent := r.Create()
	child := r.Create()

	g := NewTransformGraph()
	g.Insert(parent, Null, mgl32.Translate3D(1, 0, 0))
	g.Insert(child, parent, mgl32.Translate3D(0, 2, 0))

	dst := StorageFor[WorldTransform](r)
	g.Update(dst)

	want := mgl32.Translate3D(1, 0, 0).Mul4(mgl32.Translate3D(0, 2, 0))
	got := g.World(child)
	if got != want {
		t.Fatalf("child world = %v, want %v", got, want)
	}

	wc, err := dst.Get(child)
	if err != nil {
		t.Fatalf("Get(child): %v", err)
	}
	if wc.Matrix != want {
		t.Fatalf("written-back world = %v, want %v", wc.Matrix, want)
	}
}

func TestTransformGraphRemoveSubtree(t *testing.T) {
	r := NewRegistry()
	parent := r.Create()
	child := r.Create()
	grandchild := r.Create()

	g := NewTransformGraph()
	g.Insert(parent, Null, mgl32.Ident4())
	g.Insert(child, parent, mgl32.Ident4())
	g.Insert(grandchild, child, mgl32.Ident4())

	removed := g.Remove(child)
	if len(removed) != 2 || removed[0] != child || removed[1] != grandchild {
		t.Fatalf("Remove(child) = %v, want [child grandchild]", removed)
	}
	if g.Len() != 1 {
		t.Fatalf("Len() after removal = %d, want 1", g.Len())
	}
}
