// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package ecs

import "errors"

// Error taxonomy for the ecs package. Callers should compare with
// errors.Is, since returned errors may be wrapped with additional
// context.
var (
	// ErrBadEntity is returned when an entity handle is null, stale,
	// or was never produced by the registry/storage being queried.
	ErrBadEntity = errors.New("ecs: bad entity")

	// ErrMissingComponent is returned when an entity has no component
	// of the requested type in a given storage.
	ErrMissingComponent = errors.New("ecs: missing component")

	// ErrAlreadyPresent is returned by Emplace when the entity already
	// has a component in that storage.
	ErrAlreadyPresent = errors.New("ecs: component already present")
)
