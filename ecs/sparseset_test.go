// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package ecs

import "testing"

func TestSparseSetSwapAndPop(t *testing.T) {
	s := newSparseSet(swapAndPop, 4)
	e1, e2, e3 := entityOf(1, 0), entityOf(2, 0), entityOf(3, 0)
	for _, e := range []Entity{e1, e2, e3} {
		if _, err := s.Emplace(e); err != nil {
			t.Fatalf("Emplace(%v): %v", e, err)
		}
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if err := s.Remove(e2); err != nil {
		t.Fatalf("Remove(e2): %v", err)
	}
	if s.Contains(e2) {
		t.Fatal("Contains(e2) after Remove: want false")
	}
	// Invariant 2: for every alive entity, IndexOf matches its dense slot.
	for i, e := range s.Dense() {
		idx, err := s.IndexOf(e)
		if err != nil || int(idx) != i {
			t.Fatalf("IndexOf(%v) = %d, %v; want %d, nil", e, idx, err, i)
		}
	}
}

func TestSparseSetInPlaceTombstone(t *testing.T) {
	s := newSparseSet(inPlace, 4)
	e1, e2, e3 := entityOf(1, 0), entityOf(2, 0), entityOf(3, 0)
	for _, e := range []Entity{e1, e2, e3} {
		s.Emplace(e)
	}
	if err := s.Remove(e2); err != nil {
		t.Fatalf("Remove(e2): %v", err)
	}
	var seen []Entity
	s.Each(func(e Entity) bool {
		seen = append(seen, e)
		return false
	})
	if len(seen) != 2 || seen[0] != e1 || seen[1] != e3 {
		t.Fatalf("Each after in-place remove = %v, want [e1 e3]", seen)
	}
	// The freed slot is reused by the next Emplace.
	e4 := entityOf(4, 0)
	slot, err := s.Emplace(e4)
	if err != nil {
		t.Fatalf("Emplace(e4): %v", err)
	}
	if !s.Contains(e4) {
		t.Fatal("Contains(e4): want true")
	}
	_ = slot
}

func TestSparseSetErrors(t *testing.T) {
	s := newSparseSet(swapAndPop, 4)
	e1 := entityOf(1, 0)
	if _, err := s.Emplace(e1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Emplace(e1); err != ErrAlreadyPresent {
		t.Fatalf("second Emplace err = %v, want ErrAlreadyPresent", err)
	}
	if err := s.Remove(entityOf(99, 0)); err != ErrBadEntity {
		t.Fatalf("Remove(unknown) err = %v, want ErrBadEntity", err)
	}
}
