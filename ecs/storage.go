// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package ecs

// MetaHook is a side-effect callback registered on a Storage under a
// tag. It is never invoked implicitly by Emplace/Remove; callers
// trigger it explicitly via Storage.Call so that systems unaware of
// the concrete component type (an editor panel, say) can still react
// to changes.
type MetaHook[C any] func(Entity, *C)

// Storage is a sparse set of Entity paired with a parallel, paged
// dense array of C. storage.Get(e) always refers to the same slot as
// the underlying sparse set's IndexOf(e).
type Storage[C any] struct {
	set      *sparseSet
	pageSize uint32
	pages    [][]C
	pinned   bool
	hooks    map[string]MetaHook[C]
}

// StorageOption configures a new Storage.
type StorageOption[C any] func(*Storage[C])

// Pinned forces the inPlace deletion policy: components are never
// moved by a swap, only destroyed and left as a reusable hole. C
// values that are not safely move-assignable should use this.
func Pinned[C any]() StorageOption[C] {
	return func(s *Storage[C]) { s.pinned = true }
}

// PageSize overrides the default component-array page size (4096).
func PageSize[C any](n uint32) StorageOption[C] {
	return func(s *Storage[C]) { s.pageSize = n }
}

// NewStorage creates an empty storage for component type C.
func NewStorage[C any](opts ...StorageOption[C]) *Storage[C] {
	s := &Storage[C]{pageSize: defaultPageSize}
	for _, opt := range opts {
		opt(s)
	}
	policy := swapAndPop
	if s.pinned {
		policy = inPlace
	}
	s.set = newSparseSet(policy, s.pageSize)
	return s
}

func (s *Storage[C]) pageOf(slot uint32) (page, off uint32) {
	return slot / s.pageSize, slot % s.pageSize
}

func (s *Storage[C]) ensurePage(page uint32) []C {
	for uint32(len(s.pages)) <= page {
		s.pages = append(s.pages, make([]C, s.pageSize))
	}
	return s.pages[page]
}

func (s *Storage[C]) componentAt(slot uint32) *C {
	page, off := s.pageOf(slot)
	return &s.ensurePage(page)[off]
}

// Contains reports whether e currently has a component in this
// storage.
func (s *Storage[C]) Contains(e Entity) bool { return s.set.Contains(e) }

// Len returns the number of entities with a component in this
// storage.
func (s *Storage[C]) Len() int { return s.set.Len() }

// Emplace constructs a component for e and returns a pointer to it.
// It fails with ErrAlreadyPresent if e already has one.
func (s *Storage[C]) Emplace(e Entity, value C) (*C, error) {
	slot, err := s.set.Emplace(e)
	if err != nil {
		return nil, err
	}
	c := s.componentAt(slot)
	*c = value
	return c, nil
}

// Get returns a pointer to e's component, or ErrMissingComponent if
// e has none.
func (s *Storage[C]) Get(e Entity) (*C, error) {
	slot, err := s.set.IndexOf(e)
	if err != nil {
		return nil, ErrMissingComponent
	}
	return s.componentAt(slot), nil
}

// Patch applies fn to e's component in place. It is a convenience
// wrapper around Get for callers that only need to mutate.
func (s *Storage[C]) Patch(e Entity, fn func(*C)) error {
	c, err := s.Get(e)
	if err != nil {
		return err
	}
	fn(c)
	return nil
}

// Remove deletes e's component. Under the default swap-and-pop
// policy the freed slot is filled by the component that was last in
// dense order; under Pinned the slot becomes a tombstone eligible for
// reuse by a later Emplace.
func (s *Storage[C]) Remove(e Entity) error {
	if !s.pinned {
		last := uint32(s.set.Len()) - 1
		slot, err := s.set.IndexOf(e)
		if err != nil {
			return ErrMissingComponent
		}
		if slot != last {
			*s.componentAt(slot) = *s.componentAt(last)
		}
	}
	if err := s.set.Remove(e); err != nil {
		return ErrMissingComponent
	}
	return nil
}

// Each calls f for every (entity, component) pair in dense order.
func (s *Storage[C]) Each(f func(Entity, *C) bool) {
	s.set.Each(func(e Entity) bool {
		slot, _ := s.set.IndexOf(e)
		return f(e, s.componentAt(slot))
	})
}

// On registers a meta hook under tag, replacing any previous hook
// registered under the same tag.
func (s *Storage[C]) On(tag string, hook MetaHook[C]) {
	if s.hooks == nil {
		s.hooks = make(map[string]MetaHook[C])
	}
	s.hooks[tag] = hook
}

// Call invokes the hook registered under tag for e's component, if
// both the hook and the component exist. It is a no-op otherwise.
func (s *Storage[C]) Call(tag string, e Entity) {
	hook, ok := s.hooks[tag]
	if !ok {
		return
	}
	c, err := s.Get(e)
	if err != nil {
		return
	}
	hook(e, c)
}
