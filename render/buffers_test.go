// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextCapacityGrowsByOneAndAHalf(t *testing.T) {
	const oneMiB uint64 = 1 << 20
	required := uint64(float64(oneMiB) * 1.3)

	got := nextCapacity(oneMiB, required)
	want := uint64(math.Ceil(float64(required) * 1.5))
	require.Equal(t, want, got)
	require.GreaterOrEqual(t, got, required)
}

func TestNextCapacityNoGrowthWhenSufficient(t *testing.T) {
	require.Equal(t, uint64(1<<20), nextCapacity(1<<20, 1<<19))
}

func TestDeviceBufferUpdateResizesOnGrow(t *testing.T) {
	buf := NewDeviceBuffer[DrawCommand]()
	require.Equal(t, MinBufferBytes, buf.CapacityBytes())

	small := make([]DrawCommand, 4)
	resized := buf.Update(small)
	require.False(t, resized)
	require.Equal(t, 4, buf.Len())

	large := make([]DrawCommand, 1<<14) // forces past MinBufferBytes
	resized = buf.Update(large)
	require.True(t, resized)
	require.GreaterOrEqual(t, buf.CapacityBytes(), uint64(len(large))*elemSize[DrawCommand]())
}
