package laplacian

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAllBlack(t *testing.T) {
	src := NewImage(3, 3)

	out, _, err := ApplyLaplacian(src, 2)
	require.NoError(t, err)

	assert.Equal(t, NewImage(3, 3).Pix, out.Pix)
}

func TestFilterBrightCenter(t *testing.T) {
	// One bright pixel at (1,1). Its own tap contributes 255*8, clamped to
	// 255. Under wraparound every other pixel of a 3x3 image has exactly one
	// -1 tap on the center, so its sum is -255, clamped to 0.
	src := NewImage(3, 3)
	src.Set(1, 1, Pixel{255, 255, 255})

	out, _, err := ApplyLaplacian(src, 3)
	require.NoError(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Pixel{}
			if x == 1 && y == 1 {
				want = Pixel{255, 255, 255}
			}
			assert.Equal(t, want, out.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestFilterToroidalWrap(t *testing.T) {
	// Filtering (0,0) samples (width-1, height-1) through the wrap of both
	// axes. With src(0,0)=30 and src(2,2)=10 the sum at (0,0) is
	// 8*30 - 1*10 = 230; without wraparound it would be 240.
	src := NewImage(3, 3)
	src.Set(0, 0, Pixel{R: 30})
	src.Set(2, 2, Pixel{R: 10})

	out, _, err := ApplyLaplacian(src, 1)
	require.NoError(t, err)

	assert.Equal(t, uint8(230), out.At(0, 0).R)
}

func TestFilterTwoByTwoManual(t *testing.T) {
	// On a 2x2 image each output pixel wraps onto all four inputs:
	// out(p) = 8*p - 2*horizontal - 2*vertical - 4*diagonal.
	src := NewImage(2, 2)
	src.Set(0, 0, Pixel{R: 20})
	src.Set(1, 0, Pixel{R: 10})
	src.Set(0, 1, Pixel{R: 6})
	src.Set(1, 1, Pixel{R: 4})

	out, _, err := ApplyLaplacian(src, 2)
	require.NoError(t, err)

	assert.Equal(t, uint8(112), out.At(0, 0).R) // 160-20-12-16
	assert.Equal(t, uint8(8), out.At(1, 0).R)   // 80-40-8-24
	assert.Equal(t, uint8(0), out.At(0, 1).R)   // 48-8-40-40, clamped
	assert.Equal(t, uint8(0), out.At(1, 1).R)   // 32-20-12-80, clamped
}

func TestFilterChannelsIndependent(t *testing.T) {
	src := NewImage(2, 2)
	src.Set(0, 0, Pixel{R: 255, G: 1, B: 100})

	out, _, err := ApplyLaplacian(src, 1)
	require.NoError(t, err)

	// 8x the pixel's own value, clamped per channel.
	assert.Equal(t, Pixel{R: 255, G: 8, B: 255}, out.At(0, 0))
}

func TestFilterDeterministicAcrossWorkerCounts(t *testing.T) {
	src := NewImage(17, 13)
	for i := range src.Pix {
		src.Pix[i] = Pixel{R: uint8(i * 31), G: uint8(i * 57), B: uint8(i * 89)}
	}

	base, _, err := ApplyLaplacian(src, 1)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 4, 7, 13, 64} {
		out, _, err := ApplyLaplacian(src, workers)
		require.NoError(t, err)
		assert.Equal(t, base.Pix, out.Pix, "workers=%d", workers)
	}
}

func TestFilterOutputSize(t *testing.T) {
	src := NewImage(5, 7)

	out, elapsed, err := ApplyLaplacian(src, 4)
	require.NoError(t, err)

	assert.Len(t, out.Pix, 5*7)
	assert.GreaterOrEqual(t, elapsed, 0.0)
}

func BenchmarkApplyLaplacian(b *testing.B) {
	src := NewImage(640, 480)
	for i := range src.Pix {
		src.Pix[i] = Pixel{R: uint8(i), G: uint8(i >> 8), B: uint8(i >> 4)}
	}

	for _, workers := range []int{1, 2, 4, 8} {
		workers := workers
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, _, err := ApplyLaplacian(src, workers); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
