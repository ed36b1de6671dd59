// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Hand kernels a flat slice (Data) so hot loops use Go's own slice bounds checks
//     rather than per-element error returns.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone/Copy: O(r*c).

package matrix

import (
	"fmt"
	"math/bits"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Element] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int32]   = (*Dense[int32])(nil)
	_ Matrix[float32] = (*Dense[float32])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// checkedArea returns rows*cols or an error when either is negative or the
// product overflows int.
func checkedArea(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidDimensions
	}
	hi, lo := bits.Mul(uint(rows), uint(cols))
	if hi != 0 || lo > uint(maxInt) {
		return 0, ErrTooLarge
	}

	return int(lo), nil
}

// maxInt is the largest value representable by int on this platform.
const maxInt = int(^uint(0) >> 1)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits in int.
//   - Stage 2: allocate a zero-filled buffer (make() zero-fills deterministically).
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Zero-sized axes are legal: a 0×k matrix times a k×n matrix is a 0×n matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative shape), ErrTooLarge (area overflow).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Running out of memory during make() is fatal in the Go runtime; that is the
//     intended "allocation failure" behavior for this package.
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	n, err := checkedArea(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, n)}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Behavior highlights:
//   - Returns a bare sentinel; public methods wrap it with coordinates.
//   - Negative indices fail exactly like indices past the extent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds (never clamps or wraps).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element write at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; the matrix is left untouched.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns the i-th row as a no-copy slice of length Cols().
// Writes through the slice are visible in the matrix.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	// Full slice expression caps capacity so appends cannot spill into row i+1.
	return m.data[base : base+m.c : base+m.c], nil
}

// Data exposes the flat row-major backing slice (len == Rows()*Cols()).
// It is meant for kernels: element (i,j) lives at i*Cols()+j, and every access
// is still bounds-checked by the Go runtime.
// The slice aliases the matrix; do not retain it beyond the matrix lifetime.
func (m *Dense[T]) Data() []T { return m.data }

// Clone returns a deep copy as the Matrix interface.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() Matrix[T] { return m.Copy() }

// Copy returns a deep copy with the concrete *Dense type.
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape and data.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Copy() *Dense[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Fill assigns v to every element.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String provides a readable row-wise dump for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
