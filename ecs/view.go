// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package ecs

// Go has no variadic generics, so a view over an arbitrary number of
// component types cannot be expressed as a single generic type the
// way the source's variadic template can. View2 and View3 cover the
// arities this engine's subrenderers actually query against
// (transform+mesh, transform+mesh+material); the intersection
// algorithm is identical for any arity: the smallest storage drives
// iteration, and every other storage is only ever probed for
// membership.

// driverOf picks the smallest of the given erased storages as the
// iteration driver, tie-breaking on the lowest type id so that
// iteration order is deterministic across runs with equally-sized
// pools.
func driverOf(pools []erasedStorage) int {
	best := 0
	for i := 1; i < len(pools); i++ {
		if pools[i].size() < pools[best].size() {
			best = i
			continue
		}
		if pools[i].size() == pools[best].size() && pools[i].typeID() < pools[best].typeID() {
			best = i
		}
	}
	return best
}

// View2 is a lazy intersection of two component storages.
type View2[C1, C2 any] struct {
	s1 *Storage[C1]
	s2 *Storage[C2]
}

// Query2 builds a view over (C1, C2), creating either storage lazily
// if it has never been touched. Borrowed storages must outlive the
// view.
func Query2[C1, C2 any](r *Registry) View2[C1, C2] {
	return View2[C1, C2]{s1: StorageFor[C1](r), s2: StorageFor[C2](r)}
}

// Each yields every entity present in both storages, along with
// pointers to its components, in the dense order of whichever
// storage is smaller.
func (v View2[C1, C2]) Each(f func(Entity, *C1, *C2) bool) {
	pools := []erasedStorage{v.s1, v.s2}
	driver := driverOf(pools)
	switch driver {
	case 0:
		v.s1.Each(func(e Entity, c1 *C1) bool {
			if c2, err := v.s2.Get(e); err == nil {
				return f(e, c1, c2)
			}
			return false
		})
	default:
		v.s2.Each(func(e Entity, c2 *C2) bool {
			if c1, err := v.s1.Get(e); err == nil {
				return f(e, c1, c2)
			}
			return false
		})
	}
}

// Len returns the size of the smaller storage, an upper bound on the
// number of entities the view can yield.
func (v View2[C1, C2]) Len() int {
	if v.s1.Len() < v.s2.Len() {
		return v.s1.Len()
	}
	return v.s2.Len()
}

// View3 is a lazy intersection of three component storages.
type View3[C1, C2, C3 any] struct {
	s1 *Storage[C1]
	s2 *Storage[C2]
	s3 *Storage[C3]
}

// Query3 builds a view over (C1, C2, C3).
func Query3[C1, C2, C3 any](r *Registry) View3[C1, C2, C3] {
	return View3[C1, C2, C3]{s1: StorageFor[C1](r), s2: StorageFor[C2](r), s3: StorageFor[C3](r)}
}

// Each yields every entity present in all three storages, iterating
// in the dense order of the smallest of the three.
func (v View3[C1, C2, C3]) Each(f func(Entity, *C1, *C2, *C3) bool) {
	pools := []erasedStorage{v.s1, v.s2, v.s3}
	driver := driverOf(pools)
	get := func(e Entity) (*C1, *C2, *C3, bool) {
		c1, err1 := v.s1.Get(e)
		c2, err2 := v.s2.Get(e)
		c3, err3 := v.s3.Get(e)
		return c1, c2, c3, err1 == nil && err2 == nil && err3 == nil
	}
	switch driver {
	case 0:
		v.s1.Each(func(e Entity, _ *C1) bool {
			if c1, c2, c3, ok := get(e); ok {
				return f(e, c1, c2, c3)
			}
			return false
		})
	case 1:
		v.s2.Each(func(e Entity, _ *C2) bool {
			if c1, c2, c3, ok := get(e); ok {
				return f(e, c1, c2, c3)
			}
			return false
		})
	default:
		v.s3.Each(func(e Entity, _ *C3) bool {
			if c1, c2, c3, ok := get(e); ok {
				return f(e, c1, c2, c3)
			}
			return false
		})
	}
}
