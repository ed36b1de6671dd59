// SPDX-License-Identifier: MIT
// Package matrix — public constructor facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for building matrices with
//     explicit content (copies of caller data, constant fills, zero shapes).
//   - Each facade delegates allocation to NewDense so shape validation lives
//     in exactly one place.

package matrix

import "fmt"

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros[T Element](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewFilled returns a rows×cols matrix with every element set to v.
// Complexity: O(r*c).
func NewFilled[T Element](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(v)

	return m, nil
}

// NewDenseFrom builds a rows×cols matrix from row-major data.
// The slice is copied; later changes to data do not affect the matrix.
//
// Errors: ErrInvalidDimensions / ErrTooLarge from NewDense,
// ErrDimensionMismatch when len(data) != rows*cols.
func NewDenseFrom[T Element](rows, cols int, data []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != len(m.data) {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): len(data)=%d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// FromRows builds a matrix from a slice of equally long rows (copied).
// An empty input yields a 0×0 matrix.
//
// Errors: ErrDimensionMismatch when the rows are ragged.
func FromRows[T Element](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return NewDense[T](0, 0)
	}
	cols := len(rows[0])
	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Element](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense[T](m.r, m.c)
}

// ToRows returns a [][]T copy of m, one slice per row.
// Handy for table-driven tests and for printing small results.
func ToRows[T Element](m *Dense[T]) [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = append([]T(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}
