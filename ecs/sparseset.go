// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package ecs

// deletePolicy selects how a sparseSet behaves on removal. This
// mirrors the tagged-vtable approach called for by a type-erased
// polymorphic storage: one struct, one small set of behaviors,
// selected at construction rather than through subclassing.
type deletePolicy uint8

const (
	// swapAndPop swaps the removed entry with the last dense entry
	// and shrinks the dense slice by one. Dense order is not
	// preserved across removals.
	swapAndPop deletePolicy = iota

	// inPlace leaves a tombstone in the dense slice and threads the
	// freed slot onto an internal free list for reuse by a later
	// Emplace. Dense indices assigned to surviving entities never
	// change.
	inPlace
)

const (
	defaultPageSize = 4096
	tombstone       = Entity(^uint32(0))
)

// sparseSet is the paged sparse-set primitive described for storage
// keyed by Entity: a dense array of alive entities plus a sparse,
// page-allocated lookup table from entity index to dense slot.
type sparseSet struct {
	policy   deletePolicy
	pageSize uint32

	dense []Entity
	pages [][]int32 // -1 marks "not present" within an allocated page

	free  []uint32 // free dense slots, only used by the inPlace policy
	alive int      // number of non-tombstone entries in dense
}

func newSparseSet(policy deletePolicy, pageSize uint32) *sparseSet {
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	return &sparseSet{policy: policy, pageSize: pageSize}
}

func (s *sparseSet) pageOf(index uint32) (page, off uint32) {
	return index / s.pageSize, index % s.pageSize
}

func (s *sparseSet) ensurePage(page uint32) []int32 {
	for uint32(len(s.pages)) <= page {
		p := make([]int32, s.pageSize)
		for i := range p {
			p[i] = -1
		}
		s.pages = append(s.pages, p)
	}
	return s.pages[page]
}

func (s *sparseSet) lookup(index uint32) int32 {
	page, off := s.pageOf(index)
	if page >= uint32(len(s.pages)) {
		return -1
	}
	return s.pages[page][off]
}

func (s *sparseSet) setLookup(index uint32, slot int32) {
	page, off := s.pageOf(index)
	s.ensurePage(page)[off] = slot
}

// Contains reports whether e is currently present in the set.
func (s *sparseSet) Contains(e Entity) bool {
	if e == Null {
		return false
	}
	slot := s.lookup(e.index())
	return slot >= 0 && s.dense[slot] == e
}

// IndexOf returns the dense-array slot occupied by e.
func (s *sparseSet) IndexOf(e Entity) (uint32, error) {
	if !s.Contains(e) {
		return 0, ErrBadEntity
	}
	return uint32(s.lookup(e.index())), nil
}

// Emplace inserts e and returns the dense slot it now occupies.
func (s *sparseSet) Emplace(e Entity) (uint32, error) {
	if s.Contains(e) {
		return 0, ErrAlreadyPresent
	}
	var slot uint32
	if s.policy == inPlace && len(s.free) > 0 {
		slot = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
		s.dense[slot] = e
	} else {
		slot = uint32(len(s.dense))
		s.dense = append(s.dense, e)
	}
	s.setLookup(e.index(), int32(slot))
	s.alive++
	return slot, nil
}

// Remove deletes e from the set according to the configured policy.
func (s *sparseSet) Remove(e Entity) error {
	slot, err := s.IndexOf(e)
	if err != nil {
		return err
	}
	s.setLookup(e.index(), -1)
	s.alive--
	switch s.policy {
	case swapAndPop:
		last := uint32(len(s.dense)) - 1
		if slot != last {
			s.dense[slot] = s.dense[last]
			s.setLookup(s.dense[slot].index(), int32(slot))
		}
		s.dense = s.dense[:last]
	case inPlace:
		s.dense[slot] = tombstone
		s.free = append(s.free, slot)
	}
	return nil
}

// Len returns the number of alive entities in the set.
func (s *sparseSet) Len() int { return s.alive }

// Dense exposes the raw dense slice, including any tombstones left by
// the inPlace policy. Callers that need a clean entity sequence
// should use Each.
func (s *sparseSet) Dense() []Entity { return s.dense }

// Each calls f for every alive entity in dense order, skipping
// tombstones. Iteration reflects the dense slice as it existed when
// Each was called; mutating the set mid-iteration is undefined, per
// the single-threaded frame-loop contract this package assumes.
func (s *sparseSet) Each(f func(Entity) bool) {
	for _, e := range s.dense {
		if e == tombstone {
			continue
		}
		if f(e) {
			return
		}
	}
}
