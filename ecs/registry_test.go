// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package ecs

import "testing"

// S1 — Entity recycling: create 3 entities, destroy the middle one,
// create a 4th; the new entity must reuse the destroyed index with a
// strictly greater version.
func TestRegistryEntityRecycling(t *testing.T) {
	r := NewRegistry()
	e1 := r.Create()
	e2 := r.Create()
	e3 := r.Create()
	_ = e1
	_ = e3

	if err := r.Destroy(e2); err != nil {
		t.Fatalf("Destroy(e2): %v", err)
	}
	if r.IsValid(e2) {
		t.Fatal("IsValid(e2) after Destroy: want false")
	}

	e4 := r.Create()
	if e4.Index() != e2.Index() {
		t.Fatalf("e4.Index() = %d, want %d", e4.Index(), e2.Index())
	}
	if e4.Version() != e2.Version()+1 {
		t.Fatalf("e4.Version() = %d, want %d", e4.Version(), e2.Version()+1)
	}
}

func TestRegistryComponentLifecycle(t *testing.T) {
	type Position struct{ X, Y float32 }
	r := NewRegistry()
	e := r.Create()

	if _, err := Get[Position](r, e); err != ErrMissingComponent {
		t.Fatalf("Get before Emplace = %v, want ErrMissingComponent", err)
	}
	if _, err := Emplace(r, e, Position{1, 2}); err != nil {
		t.Fatalf("Emplace: %v", err)
	}
	if _, err := Emplace(r, e, Position{3, 4}); err != ErrAlreadyPresent {
		t.Fatalf("double Emplace = %v, want ErrAlreadyPresent", err)
	}
	p, err := Get[Position](r, e)
	if err != nil || p.X != 1 || p.Y != 2 {
		t.Fatalf("Get = %+v, %v, want {1 2}, nil", p, err)
	}
	if err := Remove[Position](r, e); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if Has[Position](r, e) {
		t.Fatal("Has after Remove: want false")
	}

	stale := e
	r2 := NewRegistry()
	dead := r2.Create()
	r2.Destroy(dead)
	if _, err := Get[Position](r2, dead); err != ErrBadEntity {
		t.Fatalf("Get(destroyed) = %v, want ErrBadEntity", err)
	}
	_ = stale
}

func TestRegistryDestroyDropsComponents(t *testing.T) {
	type Tag struct{}
	r := NewRegistry()
	e := r.Create()
	Emplace(r, e, Tag{})
	if err := r.Destroy(e); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	s := StorageFor[Tag](r)
	if s.Contains(e) {
		t.Fatal("storage still contains destroyed entity's component")
	}
}
