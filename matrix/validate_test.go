// Package matrix_test contains unit tests for the adjacency-matrix validator.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/pathtrace/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidate covers the fail-fast check chain: empty, non-square, NaN,
// negative, and the accepted shapes (including +Inf no-edge sentinels).
func TestValidate(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil matrix", nil, matrix.ErrMatrixEmpty},
		{"empty matrix", matrix.Matrix{}, matrix.ErrMatrixEmpty},
		{"1x1 zero", matrix.Matrix{{0}}, nil},
		{"valid 2x2", matrix.Matrix{{0, 1}, {2, 0}}, nil},
		{"inf entries allowed", matrix.Matrix{{0, inf}, {inf, 0}}, nil},
		{"short row", matrix.Matrix{{0, 1}, {2}}, matrix.ErrMatrixNotSquare},
		{"long row", matrix.Matrix{{0, 1, 2}, {1, 0, 1}}, matrix.ErrMatrixNotSquare},
		{"rectangular", matrix.Matrix{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}, {0, 0, 0}}, matrix.ErrMatrixNotSquare},
		{"NaN entry", matrix.Matrix{{0, math.NaN()}, {1, 0}}, matrix.ErrWeightNaN},
		{"negative entry", matrix.Matrix{{0, -3}, {1, 0}}, matrix.ErrWeightNegative},
		{"negative inf", matrix.Matrix{{0, math.Inf(-1)}, {1, 0}}, matrix.ErrWeightNegative},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := matrix.Validate(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidate_FirstViolationWins ensures validation stops at the first
// problem found in row-major order, not the "worst" one.
func TestValidate_FirstViolationWins(t *testing.T) {
	t.Parallel()

	// Row 0 has a negative entry; row 1 is short. Row-major scan must
	// report the negative weight first.
	m := matrix.Matrix{
		{0, -1},
		{3},
	}
	err := matrix.Validate(m)
	require.ErrorIs(t, err, matrix.ErrWeightNegative)
	require.NotErrorIs(t, err, matrix.ErrMatrixNotSquare)
}

// TestValidate_PositionContext checks that the failure message names the
// exact 0-based row and column of the offending entry.
func TestValidate_PositionContext(t *testing.T) {
	t.Parallel()

	m := matrix.Matrix{
		{0, 4, 2},
		{4, 0, 1},
		{2, -5, 0},
	}
	err := matrix.Validate(m)
	require.ErrorIs(t, err, matrix.ErrWeightNegative)
	require.Contains(t, err.Error(), "[2][1]")
}
