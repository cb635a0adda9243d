// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package rendergraph

import "github.com/KabelitzJ/sandbox-sub000/driver"

// AttachmentType classifies a produced attachment and drives its
// format/clear/load-store resolution.
type AttachmentType uint8

const (
	AttachmentImage AttachmentType = iota
	AttachmentDepth
	AttachmentSwapchain
)

// Produced declares an attachment a pass writes. Name identity (not
// declaration position) is what a later pass's Uses refers to.
type Produced struct {
	Name string
	Type AttachmentType

	// Format is required for AttachmentImage; ignored for Depth
	// (engine depth format is used) and Swapchain (surface format is
	// used).
	Format driver.PixelFmt

	// ClearColor is used for AttachmentImage and AttachmentSwapchain;
	// AttachmentDepth always clears to depth 1.
	ClearColor [4]float32

	// Extent overrides the default swapchain-sized extent for this
	// attachment. Zero means "matches the swapchain".
	Width, Height uint32

	// Blend overrides the default derived blend state for this
	// attachment. Nil means "derive the default" (see deriveBlend).
	Blend *driver.ColorBlend
}

// resolvedAttachment is a Produced attachment after Build has
// assigned it a concrete format, extent, clear value, and blend
// state.
type resolvedAttachment struct {
	Name   string
	Type   AttachmentType
	Format driver.PixelFmt
	Extent [2]uint32
	Clear  driver.ClearValue
	Load   driver.LoadOp
	Store  driver.StoreOp
	Blend  driver.ColorBlend
}

func isIntegerFormat(pf driver.PixelFmt) bool {
	switch pf {
	case driver.S8ui:
		return true
	default:
		return false
	}
}

// deriveBlend implements "default = opaque overwrite; uint/depth
// formats force blend disabled" (spec.md §4.4 step 4).
func deriveBlend(p Produced, depthFmt, swapchainFmt driver.PixelFmt) driver.ColorBlend {
	if p.Blend != nil {
		return *p.Blend
	}
	format := p.Format
	switch p.Type {
	case AttachmentDepth:
		format = depthFmt
	case AttachmentSwapchain:
		format = swapchainFmt
	}
	if p.Type == AttachmentDepth || isIntegerFormat(format) {
		return driver.ColorBlend{Blend: false, WriteMask: driver.CAll}
	}
	return driver.ColorBlend{
		Blend:     false,
		WriteMask: driver.CAll,
		Op:        [2]driver.BlendOp{driver.BAdd, driver.BAdd},
		SrcFac:    [2]driver.BlendFac{driver.BOne, driver.BOne},
		DstFac:    [2]driver.BlendFac{driver.BZero, driver.BZero},
	}
}

// resolveLoadStore picks an attachment's load/store ops. Every
// attachment is cleared on load (spec.md §4.4 step 4 names no other
// load policy). The store op differs: a depth attachment nothing
// downstream reads is pure scratch for its own pass's depth test and
// need not survive past it, so it is discarded; everything presented
// (AttachmentSwapchain) or consumed by a later pass (consumed) must be
// stored.
func resolveLoadStore(typ AttachmentType, consumed bool) (driver.LoadOp, driver.StoreOp) {
	if typ == AttachmentDepth && !consumed {
		return driver.LClear, driver.SDontCare
	}
	return driver.LClear, driver.SStore
}
