// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the element constraint and the public Matrix
// interface. Errors and constructors live in dedicated files.
package matrix

// Element is the set of scalar kinds a matrix may hold.
// Integer kinds use native fixed-width wraparound arithmetic; float kinds use
// plain IEEE arithmetic. A single matrix (and a single product) never mixes kinds.
type Element interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Matrix represents a two-dimensional, fixed-shape, mutable grid of T.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix[T Element] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v T) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
