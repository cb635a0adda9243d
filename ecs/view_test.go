// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package ecs

import (
	"sort"
	"testing"
)

type transformTag struct{}
type meshTag struct{}

// S2 — View intersection: populate (Transform) on {1,2,3,4} and
// (Mesh) on {1,3,5}. A view over (Transform, Mesh) must yield
// exactly {1,3}.
func TestViewIntersection(t *testing.T) {
	r := NewRegistry()
	entities := make([]Entity, 6)
	for i := 1; i <= 5; i++ {
		entities[i] = r.Create()
	}

	transform := StorageFor[transformTag](r)
	mesh := StorageFor[meshTag](r)

	for _, i := range []int{1, 2, 3, 4} {
		transform.Emplace(entities[i], transformTag{})
	}
	for _, i := range []int{1, 3, 5} {
		mesh.Emplace(entities[i], meshTag{})
	}

	view := Query2[transformTag, meshTag](r)
	var got []int
	view.Each(func(e Entity, _ *transformTag, _ *meshTag) bool {
		for i, ent := range entities {
			if ent == e {
				got = append(got, i)
			}
		}
		return false
	})
	sort.Ints(got)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("view yielded %v, want [1 3]", got)
	}
	if view.Len() != 3 {
		t.Fatalf("view.Len() = %d, want 3 (size of the smaller Mesh storage)", view.Len())
	}
}

// S6 — in-place deletion mid-iteration must not disturb the set of
// entities a single-storage iteration yields relative to a snapshot
// taken at iteration start: tombstones are skipped, no use-after-swap.
func TestInPlaceDeleteIterationStability(t *testing.T) {
	s := NewStorage[int](Pinned[int]())
	r := NewRegistry()
	e1, e2, e3 := r.Create(), r.Create(), r.Create()
	s.Emplace(e1, 1)
	s.Emplace(e2, 2)
	s.Emplace(e3, 3)

	var seen []Entity
	s.Each(func(e Entity, _ *int) bool {
		if e == e2 {
			s.Remove(e2)
		}
		seen = append(seen, e)
		return false
	})
	if len(seen) != 3 {
		t.Fatalf("iteration saw %d entities, want 3 (e2 removed after being visited)", len(seen))
	}

	var after []Entity
	s.Each(func(e Entity, _ *int) bool {
		after = append(after, e)
		return false
	})
	if len(after) != 2 || after[0] != e1 || after[1] != e3 {
		t.Fatalf("post-removal iteration = %v, want [e1 e3]", after)
	}
}
