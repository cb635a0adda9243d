// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package render implements the material-keyed draw list and the
// subrenderer contract: per-frame collection of submesh instances
// into resizable device-address storage buffers, and bucketed
// indirect draw command emission.
package render

import "github.com/go-gl/mathgl/mgl32"

// InstanceData is the 64-byte, std430-compatible per-instance record
// referenced by a draw command's instance range (spec.md §6).
type InstanceData struct {
	Tint      mgl32.Vec4 // @0
	Material  mgl32.Vec4 // @16: metallic, roughness, flexibility, anchor_height
	Payload   [4]uint32  // @32: albedo_idx, normal_idx, transform_idx, bone_offset
	Selection [4]uint32  // @48: upper_id, lower_id, 0, 0
}

// TransformData is the 128-byte shared record referenced by an
// instance's payload.transform_idx: a model matrix and a normal
// matrix, both column-major.
type TransformData struct {
	Model  mgl32.Mat4
	Normal mgl32.Mat4
}

// MaterialData is the shared per-material record referenced by an
// instance's material index, packing image-array indices and scalar
// parameters. Fields mirror the original engine's material_data
// record.
type MaterialData struct {
	AlbedoIndex   uint32
	NormalIndex   uint32
	MRAOIndex     uint32
	EmissiveIndex uint32

	BaseColor     mgl32.Vec4
	EmissiveColor mgl32.Vec4

	Metallic         float32
	Roughness        float32
	Occlusion        float32
	EmissiveStrength float32

	AlphaCutoff float32
	NormalScale float32
	Flags       uint32

	_pad float32 // keeps the record a multiple of 16 bytes for std430
}

// JointLayout is the per-joint skinning record (joint + normal
// matrix). The engine's draw list only ever reserves a bone_offset
// into a buffer of these; skinning evaluation itself is out of scope
// here.
type JointLayout struct {
	Joint  mgl32.Mat4
	Normal mgl32.Mat4
}

// DrawCommand is the standard Vulkan indirect indexed draw command
// (spec.md §6: "the standard 20-byte Vulkan structure" —
// VkDrawIndexedIndirectCommand is 5 uint32-sized fields).
type DrawCommand struct {
	IndexCount    uint32
	InstanceCount uint32
	FirstIndex    uint32
	VertexOffset  int32
	FirstInstance uint32
}

// DrawCommandRange is a contiguous slice of a (pipeline, bucket)'s
// draw-command buffer contributed by a single mesh.
type DrawCommandRange struct {
	Offset uint32
	Count  uint32
}
