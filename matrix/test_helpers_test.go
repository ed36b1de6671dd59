// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Dense and kernel tests.

package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/matperf/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense ALLOCATES an r×c *Dense or fails the test.
func mustDense[T matrix.Element](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// seqDense fills an r×c matrix with 0, 1, 2, ... in row-major order.
func seqDense[T matrix.Element](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m := mustDense[T](tb, r, c)
	m.Apply(func(i, j int, _ T) T { return T(i*c + j) })

	return m
}

// fillDenseRand fills m with values in [-1, 1) from a fixed seed.
func fillDenseRand[T matrix.Element](tb testing.TB, m *matrix.Dense[T], seed uint64) {
	tb.Helper()
	rng := rand.New(rand.NewPCG(seed, seed+1))
	data := m.Data()
	for i := range data {
		data[i] = T(rng.Float64()*2 - 1)
	}
}
