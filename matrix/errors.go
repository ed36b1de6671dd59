// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by its callers (multiply, bench). All functions return these
// sentinels, optionally wrapped with call-site context, and tests check them
// via errors.Is. No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrTooLarge indicates that rows*cols does not fit into an addressable slice.
	// A genuine out-of-memory condition is fatal in the Go runtime and is not
	// represented here.
	ErrTooLarge = errors.New("matrix: dimensions exceed addressable size")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Equal on different shapes, or a product where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadTolerance indicates a NaN, infinite or otherwise unusable tolerance
	// passed to AllClose.
	ErrBadTolerance = errors.New("matrix: invalid tolerance")
)

// ErrIndexOutOfRange names the same condition as ErrOutOfRange.
// errors.Is(err, ErrIndexOutOfRange) and errors.Is(err, ErrOutOfRange) are equivalent.
var ErrIndexOutOfRange = ErrOutOfRange
