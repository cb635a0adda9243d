// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package rendergraph

// ViewportKind selects how a pass's viewport extent is derived.
// Grounded on the three static factories of the original engine's
// viewport type (fixed, window, dynamic).
type ViewportKind uint8

const (
	// ViewportFixed uses an absolute pixel size given at declaration
	// time.
	ViewportFixed ViewportKind = iota
	// ViewportWindow scales the swapchain extent by a fraction.
	ViewportWindow
	// ViewportDynamic takes the resolved extent of the pass's first
	// produced attachment.
	ViewportDynamic
)

// Viewport is a pass's declared (unresolved) viewport.
type Viewport struct {
	Kind           ViewportKind
	Width, Height  uint32  // used when Kind == ViewportFixed
	ScaleX, ScaleY float32 // used when Kind == ViewportWindow
}

// Fixed declares an absolute pixel-size viewport.
func Fixed(width, height uint32) Viewport {
	return Viewport{Kind: ViewportFixed, Width: width, Height: height}
}

// Window declares a viewport sized as a fraction of the swapchain
// extent.
func Window(scaleX, scaleY float32) Viewport {
	return Viewport{Kind: ViewportWindow, ScaleX: scaleX, ScaleY: scaleY}
}

// Dynamic declares a viewport sized from whatever the pass's first
// produced attachment resolves to.
func Dynamic() Viewport {
	return Viewport{Kind: ViewportDynamic}
}

// ResolvedViewport is a pass's concrete, post-build viewport extent.
type ResolvedViewport struct {
	Width, Height uint32
}

func resolveViewport(v Viewport, swapchainW, swapchainH uint32, firstProduced func() (uint32, uint32, bool)) (ResolvedViewport, error) {
	switch v.Kind {
	case ViewportFixed:
		return ResolvedViewport{v.Width, v.Height}, nil
	case ViewportWindow:
		return ResolvedViewport{
			Width:  uint32(float32(swapchainW) * v.ScaleX),
			Height: uint32(float32(swapchainH) * v.ScaleY),
		}, nil
	default: // ViewportDynamic
		w, h, ok := firstProduced()
		if !ok {
			return ResolvedViewport{}, nil // caller raises UndefinedViewport
		}
		return ResolvedViewport{w, h}, nil
	}
}
