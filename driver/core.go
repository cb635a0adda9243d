// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package driver defines the opaque GPU backend contract the rest of
// this repo programs against: a command buffer that records draws
// into a render-graph-resolved pass, a device buffer handle for
// indirect-draw arguments, and the attachment/format/blend/load-store
// vocabulary the render graph resolves passes into.
//
// This is deliberately a narrow slice of a full GPU API. The teacher
// package this is grounded on (gviegas/scene/driver) additionally
// defines device/driver registration, presentation, descriptor-set
// layout, pipeline state, images, and samplers — none of which any
// operation in this repo ever calls, since a concrete Vulkan backend
// is explicitly out of scope (spec.md §1: "treated as an opaque GPU
// backend"). Only the surface the render graph, draw list, and
// executor actually exercise is kept here.
package driver

// Destroyer is the interface that wraps the Destroy method.
// Types that implement this interface may allocate external
// memory that is not managed by GC, so Destroy must be
// called explicitly to ensure such memory is deallocated.
type Destroyer interface {
	Destroy()
}

// Buffer is the interface that defines a GPU buffer handle. The draw
// list only ever needs an opaque handle to pass to
// CmdBuffer.DrawIndexedIndirect; buffer creation, mapping, and
// capacity belong to the GPU backend itself.
type Buffer interface {
	Destroyer
}

// CmdBuffer is the interface that defines a command buffer, trimmed
// to the recording/draw operations the render-graph executor and
// draw-list subrenderers issue: begin recording, end the active pass,
// draw (directly or indirect), and end recording.
type CmdBuffer interface {
	// Begin prepares the command buffer for recording. It must be
	// called before any command is recorded.
	Begin() error

	// EndPass ends the current render pass.
	EndPass()

	// DrawIndexed draws indexed primitives directly.
	// It must only be called during a render pass.
	DrawIndexed(idxCount, instCount, baseIdx, vertOff, baseInst int)

	// DrawIndexedIndirect draws indexed primitives whose arguments are
	// sourced from buf: drawCount commands are read starting at byte
	// offset off, stride bytes apart. It must only be called during a
	// render pass.
	DrawIndexedIndirect(buf Buffer, off int64, drawCount, stride int)

	// End ends command recording and prepares the command buffer for
	// execution.
	End() error
}

// LoadOp is the type of an attachment's load operation.
type LoadOp int

// Load operations.
const (
	LDontCare LoadOp = iota
	LClear
	LLoad
)

// StoreOp is the type of an attachment's store operation.
type StoreOp int

// Store operations.
const (
	SDontCare StoreOp = iota
	SStore
)

// ClearValue defines clear values for color or depth/stencil
// aspects of a render target.
type ClearValue struct {
	Color   [4]float32
	Depth   float32
	Stencil uint32
}

// BlendOp is the type of blend operations.
type BlendOp int

// Blend operations.
const (
	BAdd BlendOp = iota
	BSubtract
	BRevSubtract
	BMin
	BMax
)

// BlendFac is the type of blend factors.
type BlendFac int

// Blend factors.
const (
	BZero BlendFac = iota
	BOne
	BSrcColor
	BInvSrcColor
	BSrcAlpha
	BInvSrcAlpha
	BDstColor
	BInvDstColor
	BDstAlpha
	BInvDstAlpha
	BSrcAlphaSaturated
	BBlendColor
	BInvBlendColor
)

// ColorMask is the type of a color write mask.
type ColorMask int

// Color write masks.
const (
	CRed ColorMask = 1 << iota
	CGreen
	CBlue
	CAlpha
	// Write to all channels.
	CAll ColorMask = 1<<iota - 1
)

// ColorBlend defines a render target's blend parameters for the
// color blend state of a graphics pipeline.
type ColorBlend struct {
	// Blend enables blending.
	Blend bool
	// WriteMask specifies which color channels to write.
	// If blending is not enabled, the incoming samples
	// are written unmodified to the specified channels.
	WriteMask ColorMask
	// In the arrays that follows, [0] is for color and
	// [1] is for alpha.
	Op     [2]BlendOp
	SrcFac [2]BlendFac
	DstFac [2]BlendFac
}

// PixelFmt describes the format of a pixel.
type PixelFmt int

// Pixel formats.
const (
	// Color, 8-bit channels.
	RGBA8un PixelFmt = iota
	RGBA8n
	RGBA8sRGB
	BGRA8un
	BGRA8sRGB
	RG8un
	RG8n
	R8un
	R8n
	// Color, 16-bit channels.
	RGBA16f
	RG16f
	R16f
	// Color, 32-bit channels.
	RGBA32f
	RG32f
	R32f
	// Depth/Stencil.
	D16un
	D32f
	S8ui
	D24unS8ui
	D32fS8ui
)
