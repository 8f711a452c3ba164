package util

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelRangeCovers(t *testing.T) {
	for _, n := range []uint{0, 1, 2, 7, 64, 1000} {
		for _, workers := range []uint{1, 2, 3, 16, 2000} {
			var (
				visited = make([]int32, n)
				total   atomic.Uint64
			)
			//
			err := ParallelRange(n, workers, func(_, start, end uint) error {
				for i := start; i < end; i++ {
					atomic.AddInt32(&visited[i], 1)
					total.Add(1)
				}
				//
				return nil
			})
			//
			require.NoError(t, err)
			require.Equal(t, uint64(n), total.Load(), "n=%d workers=%d", n, workers)
			// every index visited exactly once
			for i := range visited {
				assert.Equal(t, int32(1), visited[i], "index %d (n=%d workers=%d)", i, n, workers)
			}
		}
	}
}

func TestParallelRangeError(t *testing.T) {
	err := ParallelRange(100, 4, func(_, start, _ uint) error {
		if start == 0 {
			return assert.AnError
		}
		//
		return nil
	})
	//
	assert.ErrorIs(t, err, assert.AnError)
}

func TestParallelScan(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	//
	for _, n := range []uint{0, 1, 2, 17, 256, 4099} {
		xs := make([]int64, n)
		//
		for i := range xs {
			xs[i] = rng.Int63n(1000)
		}
		// sequential reference
		expected := make([]int64, n)
		acc := int64(0)
		//
		for i, x := range xs {
			acc += x
			expected[i] = acc
		}
		//
		for _, workers := range []uint{1, 2, 5, 32} {
			scanned := make([]int64, n)
			copy(scanned, xs)
			ParallelScan(scanned, func(a, b int64) int64 { return a + b }, workers)
			//
			assert.Equal(t, expected, scanned, "n=%d workers=%d", n, workers)
		}
	}
}
