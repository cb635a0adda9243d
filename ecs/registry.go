// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package ecs

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// nullFree is the free-list terminator: the largest index an Entity
// can encode. Reaching it as a real, alive index would already be a
// capacity violation of the 20-bit index field, so it is safe to
// repurpose as "no next free slot".
const nullFree = indexMask

var (
	typeIDs    sync.Map // map[reflect.Type]uint64
	nextTypeID uint64
)

// typeIDOf returns a process-stable, monotonically assigned id for
// C. It is the runtime stand-in for the source system's templated
// component-id generation: lazily assigned the first time any
// registry touches C, never persisted across runs. Ids are also used
// to break ties between equally-sized storages in View iteration.
func typeIDOf[C any]() uint64 {
	key := reflect.TypeOf((*C)(nil)).Elem()
	if id, ok := typeIDs.Load(key); ok {
		return id.(uint64)
	}
	id := atomic.AddUint64(&nextTypeID, 1)
	actual, _ := typeIDs.LoadOrStore(key, id)
	return actual.(uint64)
}

// erasedStorage is the minimal vtable a Registry needs to manage a
// component pool without knowing its concrete type: drop an entity's
// component when the entity itself is destroyed, and report enough
// to let a View pick a driver pool and tie-break it.
type erasedStorage interface {
	dropEntity(Entity)
	typeID() uint64
	size() int
}

func (s *Storage[C]) dropEntity(e Entity) {
	if s.Contains(e) {
		_ = s.Remove(e)
	}
}

func (s *Storage[C]) typeID() uint64 { return typeIDOf[C]() }

func (s *Storage[C]) size() int { return s.Len() }

// Registry owns the entity allocator and the lazily-created component
// storages keyed by runtime component type.
type Registry struct {
	entities []Entity
	freeHead uint32
	alive    int

	pools map[uint64]erasedStorage
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	// Index 0 is reserved so that no created entity equals Null.
	return &Registry{entities: []Entity{Null}, freeHead: nullFree, pools: make(map[uint64]erasedStorage)}
}

// Create allocates a fresh entity, reusing the most recently freed
// index when one is available, per the swap_only free-list scheme
// used for the entity pool itself.
func (r *Registry) Create() Entity {
	var e Entity
	if r.freeHead != nullFree {
		idx := r.freeHead
		freed := r.entities[idx]
		r.freeHead = freed.index()
		e = entityOf(idx, freed.version())
		r.entities[idx] = e
	} else {
		idx := uint32(len(r.entities))
		e = entityOf(idx, 0)
		r.entities = append(r.entities, e)
	}
	r.alive++
	return e
}

// IsValid reports whether e refers to a currently alive entity.
func (r *Registry) IsValid(e Entity) bool {
	idx := e.index()
	if e == Null || int(idx) >= len(r.entities) {
		return false
	}
	return r.entities[idx] == e
}

// Destroy invalidates e: every component it holds across every
// registered storage is dropped, its index's version is incremented,
// and the index is returned to the free list. Destroying an invalid
// entity is reported as ErrBadEntity.
func (r *Registry) Destroy(e Entity) error {
	if !r.IsValid(e) {
		return ErrBadEntity
	}
	for _, pool := range r.pools {
		pool.dropEntity(e)
	}
	idx := e.index()
	nextVersion := (e.version() + 1) & versionMask
	r.entities[idx] = entityOf(r.freeHead, nextVersion)
	r.freeHead = idx
	r.alive--
	return nil
}

// Alive returns the number of currently alive entities.
func (r *Registry) Alive() int { return r.alive }

func storageOf[C any](r *Registry, create bool) *Storage[C] {
	id := typeIDOf[C]()
	if v, ok := r.pools[id]; ok {
		return v.(*Storage[C])
	}
	if !create {
		return nil
	}
	s := NewStorage[C]()
	r.pools[id] = s
	return s
}

// Emplace adds a C component to e, creating the storage for C on
// first use. It fails with ErrBadEntity if e is not alive, or
// ErrAlreadyPresent if e already has a component of this type.
func Emplace[C any](r *Registry, e Entity, value C) (*C, error) {
	if !r.IsValid(e) {
		return nil, ErrBadEntity
	}
	return storageOf[C](r, true).Emplace(e, value)
}

// Get returns e's C component, or ErrMissingComponent if it has
// none, or ErrBadEntity if e is not alive.
func Get[C any](r *Registry, e Entity) (*C, error) {
	if !r.IsValid(e) {
		return nil, ErrBadEntity
	}
	s := storageOf[C](r, false)
	if s == nil {
		return nil, ErrMissingComponent
	}
	return s.Get(e)
}

// Has reports whether e currently has a C component.
func Has[C any](r *Registry, e Entity) bool {
	if !r.IsValid(e) {
		return false
	}
	s := storageOf[C](r, false)
	return s != nil && s.Contains(e)
}

// Remove drops e's C component.
func Remove[C any](r *Registry, e Entity) error {
	if !r.IsValid(e) {
		return ErrBadEntity
	}
	s := storageOf[C](r, false)
	if s == nil {
		return ErrMissingComponent
	}
	return s.Remove(e)
}

// StorageFor returns the registry's storage for C, creating it if it
// does not yet exist. Most callers should prefer the free functions
// above; StorageFor is for systems that want to iterate a single
// component type directly, or to build a View by hand.
func StorageFor[C any](r *Registry) *Storage[C] {
	return storageOf[C](r, true)
}
