// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package render

import "github.com/google/uuid"

// MaterialKey is the opaque, hashable identifier grouping instances
// that share a pipeline, textures, and scalar parameters (spec.md
// GLOSSARY "Material key").
type MaterialKey uuid.UUID

// MeshID identifies a mesh asset. Mesh loading itself is out of
// scope; the draw list only ever needs the id to look the mesh's
// submesh geometry up through a MeshProvider.
type MeshID uuid.UUID

// AlphaMode mirrors the original engine's material alpha modes.
type AlphaMode uint8

const (
	AlphaOpaque AlphaMode = iota
	AlphaBlend
	AlphaMask
)

// Material is the minimal view of a material the draw list needs:
// enough to classify its bucket membership, dedupe it, and pack its
// shared MaterialData record. Texture indices are assumed already
// resolved into the shared image array by the caller, since image
// packing is an asset-pipeline concern out of scope here.
type Material struct {
	Key MaterialKey

	AlphaMode  AlphaMode
	CastShadow bool

	AlbedoIndex   uint32
	NormalIndex   uint32
	MRAOIndex     uint32
	EmissiveIndex uint32

	Data MaterialData
}

// Bucket is one of the three draw-list buckets a material's
// instances can be sorted into. A material's membership is a *set*
// of buckets, not a single value: an opaque material flagged
// cast_shadow contributes to both the opaque and shadow buckets
// (SPEC_FULL.md "Shadow-map bucket wiring").
type Bucket int

const (
	BucketOpaque Bucket = iota
	BucketTransparent
	BucketShadow
	bucketCount
)

// classifyBucket derives a material's primary bucket from its alpha
// mode (spec.md §4.5 step 2 / original material_draw_list.hpp
// _classify_bucket).
func classifyBucket(m Material) Bucket {
	if m.AlphaMode == AlphaBlend {
		return BucketTransparent
	}
	return BucketOpaque
}

// bucketsFor returns every bucket m contributes to.
func bucketsFor(m Material) []Bucket {
	buckets := []Bucket{classifyBucket(m)}
	if m.CastShadow {
		buckets = append(buckets, BucketShadow)
	}
	return buckets
}
