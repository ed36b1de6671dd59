// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison.
//
// Purpose:
//   - Exact equality for integer products (all strategies must agree bit-for-bit).
//   - Tolerance-based closeness for float products, where summation order may
//     differ between strategies and the low mantissa bits disagree.

package matrix

import "math"

// Equal reports whether a and b have identical shape and identical elements.
// Floats are compared with ==, so NaN never equals NaN.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c), early exit on the first difference.
func Equal[T Element](a, b *Dense[T]) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false, nil
		}
	}

	return true, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized to |rtol|, |atol|.
//   - Arithmetic is done in float64 regardless of T.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose[T Element](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrBadTolerance)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range a.data {
		av, bv = float64(a.data[idx]), float64(b.data[idx])
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a-b| over all elements, computed in float64.
// An empty matrix yields 0.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff[T Element](a, b *Dense[T]) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	var worst, d float64
	for idx := range a.data {
		d = math.Abs(float64(a.data[idx]) - float64(b.data[idx]))
		if d > worst {
			worst = d
		}
	}

	return worst, nil
}
