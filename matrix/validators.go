// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    wrap once more with their own operation name.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Element](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b are non-nil and have equal dimensions.
//
// Return: nil or wrapped ErrNilMatrix / ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Element](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks that a and b are non-nil and a.Cols == b.Rows.
// This is the gate every multiplication strategy runs before allocating or
// dispatching anything.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with the operand shapes).
// Complexity: O(1).
func ValidateMulCompatible[T Element](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return fmt.Errorf("ValidateMulCompatible: %dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	return nil
}
