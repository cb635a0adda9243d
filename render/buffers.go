// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package render

import (
	"math"
	"unsafe"

	"github.com/KabelitzJ/sandbox-sub000/driver"
)

// MinBufferBytes is the initial capacity given to every device buffer
// a draw list creates, mirroring the original engine's
// storage_buffer::min_size floor.
const MinBufferBytes uint64 = 1 << 16

func elemSize[T any]() uint64 {
	var zero T
	return uint64(unsafe.Sizeof(zero))
}

// nextCapacity implements the resize-on-grow rule from spec.md §4.5
// step 4 / §8 S5: grow to ceil(required * 1.5) whenever the buffer is
// too small, otherwise leave capacity untouched.
func nextCapacity(current, required uint64) uint64 {
	if required <= current {
		return current
	}
	return uint64(math.Ceil(float64(required) * 1.5))
}

// DeviceBuffer is a resizable, typed storage buffer. It keeps the
// size arithmetic in element units (resolving the "buffer::map byte
// vs. element units" open question explicitly, per SPEC_FULL.md) and
// only computes byte sizes at the resize boundary.
//
// The buffer's backing GPU allocation (device address, memory) is
// out of this package's scope — handle is an opaque driver.Buffer the
// caller assigns, and reassigns whenever Update grows past the
// allocation the handle currently refers to. A subrenderer reads
// handle to issue an indirect draw against it.
type DeviceBuffer[T any] struct {
	elems         []T
	capacityBytes uint64
	handle        driver.Buffer
}

// NewDeviceBuffer creates a buffer with at least MinBufferBytes of
// capacity.
func NewDeviceBuffer[T any]() *DeviceBuffer[T] {
	return &DeviceBuffer[T]{capacityBytes: MinBufferBytes}
}

// Update replaces the buffer's full contents with data. Per spec.md
// §4.5's instance lifecycle, prior contents are never preserved
// across an Update — each frame uploads the complete vector. It
// reports whether the backing capacity had to grow.
func (b *DeviceBuffer[T]) Update(data []T) (resized bool) {
	required := uint64(len(data)) * elemSize[T]()
	next := nextCapacity(b.capacityBytes, required)
	resized = next != b.capacityBytes
	b.capacityBytes = next
	b.elems = data
	return resized
}

// CapacityBytes returns the buffer's current backing capacity.
func (b *DeviceBuffer[T]) CapacityBytes() uint64 { return b.capacityBytes }

// Elements returns the buffer's current logical contents.
func (b *DeviceBuffer[T]) Elements() []T { return b.elems }

// Len returns the number of elements currently uploaded.
func (b *DeviceBuffer[T]) Len() int { return len(b.elems) }

// Handle returns the driver.Buffer backing this buffer's current
// allocation, or nil if none has been assigned yet.
func (b *DeviceBuffer[T]) Handle() driver.Buffer { return b.handle }

// SetHandle assigns the driver.Buffer backing this buffer's current
// allocation. Callers reassign it whenever Update grows the buffer
// past a previously allocated handle's capacity.
func (b *DeviceBuffer[T]) SetHandle(h driver.Buffer) { b.handle = h }

// Stride returns the byte size of one T element, for computing
// driver.CmdBuffer.DrawIndexedIndirect offsets into this buffer.
func (b *DeviceBuffer[T]) Stride() int64 { return int64(elemSize[T]()) }
