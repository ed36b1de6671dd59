// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major container consumed by the
// multiplication strategies in package multiply.
//
// The package provides:
//
//   - Dense[T], a rows×cols grid of a single numeric element type
//     (int32, int64, float32 or float64) stored in one flat slice.
//   - Bounds-checked accessors (At/Set/Row) that return ErrOutOfRange
//     instead of panicking or clamping.
//   - Transpose, used by the cache-optimized strategies to turn a column walk
//     of B into a row walk of Bᵀ.
//   - Exact (Equal) and tolerance-based (AllClose) comparison, used to check
//     optimized strategies against the naive reference.
//
// A Dense never changes shape after construction. Clone produces a fully
// independent copy; there is no shared or copy-on-write storage.
//
// See example_test.go for usage patterns.
package matrix
