// SPDX-License-Identifier: MIT
// Package parallel_test verifies the row-range partition and the join barrier.
package parallel_test

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/matperf/parallel"
	"github.com/stretchr/testify/require"
)

// requireExactCover asserts that ranges are contiguous, ordered and cover [0,n) once.
func requireExactCover(t *testing.T, ranges []parallel.Range, n int) {
	t.Helper()
	hits := make([]int, n)
	next := 0
	for _, r := range ranges {
		require.Equal(t, next, r.Start, "gap or overlap before %s", r)
		require.GreaterOrEqual(t, r.End, r.Start)
		for i := r.Start; i < r.End; i++ {
			hits[i]++
		}
		next = r.End
	}
	require.Equal(t, n, next)
	for i, h := range hits {
		require.Equal(t, 1, h, "row %d covered %d times", i, h)
	}
}

// TestPartitionCoverage100x7 checks the floor formula boundaries directly.
func TestPartitionCoverage100x7(t *testing.T) {
	ranges := parallel.Partition(100, 7)
	require.Len(t, ranges, 7)
	requireExactCover(t, ranges, 100)

	want := []parallel.Range{
		{0, 14}, {14, 28}, {28, 42}, {42, 57}, {57, 71}, {71, 85}, {85, 100},
	}
	require.Equal(t, want, ranges)
}

func TestPartitionGrid(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 8, 63, 64, 65, 1000} {
		for _, w := range []int{1, 2, 3, 4, 7, 8, 16, 33} {
			t.Run(fmt.Sprintf("n=%d/w=%d", n, w), func(t *testing.T) {
				ranges := parallel.Partition(n, w)
				require.Len(t, ranges, min(w, max(n, 1)))
				requireExactCover(t, ranges, n)
				for _, r := range ranges {
					require.LessOrEqual(t, r.Len(), n/w+1)
					if n > 0 {
						require.False(t, r.Empty(), r.String())
					}
				}
			})
		}
	}
}

func TestPartitionDegenerate(t *testing.T) {
	require.Equal(t, []parallel.Range{{0, 5}}, parallel.Partition(5, 0))
	require.Equal(t, []parallel.Range{{0, 5}}, parallel.Partition(5, -3))
	require.Equal(t, []parallel.Range{{0, 0}}, parallel.Partition(-1, 2))
	require.Equal(t, []parallel.Range{{0, 0}}, parallel.Partition(0, 8))
	require.Equal(t, []parallel.Range{{0, 1}, {1, 2}, {2, 3}}, parallel.Partition(3, 5))
}

// The block count never exceeds n, however many workers are requested.
func TestPartitionCapsWorkersAtLength(t *testing.T) {
	ranges := parallel.Partition(5, 1<<30)
	require.Len(t, ranges, 5)
	requireExactCover(t, ranges, 5)
	require.Len(t, parallel.Partition(1, math.MaxInt), 1)
}

func TestWorkers(t *testing.T) {
	require.Equal(t, 3, parallel.Workers(3))
	require.GreaterOrEqual(t, parallel.Workers(0), 1)
	require.GreaterOrEqual(t, parallel.Workers(-1), 1)
}

// TestForJoinsAll verifies every non-empty range runs exactly once and that
// all writes are visible after For returns.
func TestForJoinsAll(t *testing.T) {
	const n = 1000
	out := make([]int, n)
	var calls atomic.Int32
	err := parallel.For(parallel.Partition(n, 9), func(r parallel.Range) error {
		calls.Add(1)
		for i := r.Start; i < r.End; i++ {
			out[i] = i * 2
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int32(9), calls.Load())
	for i := range out {
		require.Equal(t, i*2, out[i])
	}
}

func TestForSkipsEmpty(t *testing.T) {
	var calls atomic.Int32
	ranges := []parallel.Range{{0, 1}, {1, 1}, {1, 2}, {2, 2}}
	err := parallel.For(ranges, func(r parallel.Range) error {
		if r.Empty() {
			return errors.New("empty range dispatched")
		}
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, int32(2), calls.Load())

	require.NoError(t, parallel.For(nil, func(parallel.Range) error { return errors.New("unreachable") }))
}

func TestForPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	var calls atomic.Int32
	err := parallel.For(parallel.Partition(40, 4), func(r parallel.Range) error {
		calls.Add(1)
		if r.Start == 20 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, int32(4), calls.Load())
}
