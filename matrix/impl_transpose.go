// SPDX-License-Identifier: MIT
// Package matrix: transpose kernel.
//
// Purpose:
//   - Materialize Bᵀ once so cache-optimized products can walk both operands
//     along their contiguous (row-major) direction.
//
// Notes:
//   - Transpose is a full materialization; callers hoist it out of hot loops.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opTranspose  = "Transpose"
	opEqual      = "Equal"
	opAllClose   = "AllClose"
	opMaxAbsDiff = "MaxAbsDiff"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: data[i*cols + j] → res.data[j*rows + i], fixed i→j order.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// Notes:
//   - Transpose(Transpose(m)) is element-wise identical to m.
func Transpose[T Element](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res, err := NewDense[T](cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}
