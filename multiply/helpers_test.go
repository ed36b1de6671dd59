// SPDX-License-Identifier: MIT

package multiply_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/matperf/matrix"
	"github.com/stretchr/testify/require"
)

// shape is one (m×k)·(k×n) product.
type shape struct{ m, k, n int }

// shapes covers square, lane-aligned, non-multiple and degenerate products.
var shapes = []shape{
	{1, 1, 1},
	{3, 3, 3},
	{8, 8, 8},
	{2, 5, 8},
	{9, 8, 16},
	{17, 9, 13},
	{70, 65, 130},
	{0, 4, 5},
	{4, 0, 5},
	{5, 4, 0},
}

// mustDense allocates an r×c zero matrix or fails the test.
func mustDense[T matrix.Element](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// randDense fills an r×c matrix with small values from a seeded PCG stream.
func randDense[T matrix.Element](tb testing.TB, r, c int, seed uint64) *matrix.Dense[T] {
	tb.Helper()
	m := mustDense[T](tb, r, c)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := m.Data()
	for i := range data {
		data[i] = T(rng.IntN(19)) - 9
		if f, ok := any(data[i]).(float64); ok {
			data[i] = T(f + rng.Float64())
		}
		if f, ok := any(data[i]).(float32); ok {
			data[i] = T(f + rng.Float32())
		}
	}

	return m
}

// reference computes a·b through the checked accessors only.
func reference[T matrix.Element](tb testing.TB, a, b *matrix.Dense[T]) *matrix.Dense[T] {
	tb.Helper()
	c := mustDense[T](tb, a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			var sum T
			for p := 0; p < a.Cols(); p++ {
				x, err := a.At(i, p)
				require.NoError(tb, err)
				y, err := b.At(p, j)
				require.NoError(tb, err)
				sum += x * y
			}
			require.NoError(tb, c.Set(i, j, sum))
		}
	}

	return c
}
