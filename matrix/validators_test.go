// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/matperf/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	dense := func(r, c int) *matrix.Dense[float64] {
		return mustDense[float64](t, r, c)
	}

	tests := []struct {
		name    string
		a, b    *matrix.Dense[float64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, dense(2, 2), matrix.ErrNilMatrix},
		{"second nil", dense(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", dense(2, 3), dense(2, 3), nil},
		{"row mismatch", dense(2, 3), dense(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", dense(2, 3), dense(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateMulCompatible covers the inner-dimension gate.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a := mustDense[int32](t, 2, 3)
	require.NoError(t, matrix.ValidateMulCompatible(a, mustDense[int32](t, 3, 5)))
	require.NoError(t, matrix.ValidateMulCompatible(mustDense[int32](t, 0, 0), mustDense[int32](t, 0, 7)))

	err := matrix.ValidateMulCompatible(a, mustDense[int32](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "2x3 × 2x3")

	err = matrix.ValidateMulCompatible(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNotNil[int64](nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(mustDense[int64](t, 1, 1)))
}
