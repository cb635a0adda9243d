// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package render

// Submesh is a (index_offset, index_count, vertex_offset) slice of a
// mesh's buffers, rendered with one material (spec.md GLOSSARY).
type Submesh struct {
	IndexCount   uint32
	IndexOffset  uint32
	VertexOffset int32
}

// Mesh exposes the submesh geometry a draw list needs to build
// indirect draw commands. Concrete mesh storage (vertex/index
// buffers, loading from glTF) is out of scope; this is the narrow
// seam the draw list programs against.
type Mesh interface {
	// Submesh returns the geometry slice for the submesh at index.
	// index is only ever called with values the draw list observed
	// through a Submission, so implementations need not bounds-check
	// defensively.
	Submesh(index int) Submesh
}

// MeshProvider resolves a MeshID to its Mesh. A missing mesh causes
// the draw list to skip that mesh's draws for the frame without
// aborting (spec.md §7 "missing meshes skip the draw without
// aborting").
type MeshProvider interface {
	Mesh(id MeshID) (Mesh, bool)
}

// MaterialProvider resolves a MaterialKey to its Material.
type MaterialProvider interface {
	Material(key MaterialKey) (Material, bool)
}
