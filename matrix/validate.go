// Package matrix: adjacency-matrix validation.
//
// Validate is the single gatekeeper between raw caller input and the
// shortest-path engine: the engine's correctness guarantee is conditional on
// its input having passed this function, and the engine itself never
// re-checks weight signs.

package matrix

import (
	"fmt"
	"math"
)

// Validate checks that m is a well-formed adjacency matrix:
//
//  1. non-empty (at least one row),
//  2. square (every row has exactly Order() entries),
//  3. numeric (no NaN entries),
//  4. non-negative (every entry ≥ 0; +Inf is allowed as a no-edge sentinel).
//
// Validation is fail-fast: scanning proceeds row by row, left to right, and
// the first violation found is returned with row/column context. Positions
// in validator messages are 0-based indices ([i][j]), matching how callers
// address the matrix.
//
// Complexity: O(N²) worst case, O(1) extra space. Pure; m is never mutated.
func Validate(m Matrix) error {
	// Stage 1: reject the empty grid before touching any row.
	n := m.Order()
	if n == 0 {
		return ErrMatrixEmpty
	}

	// Stage 2-4: one deterministic row-major scan, first violation wins.
	var (
		i, j int
		row  []float64
		v    float64
	)
	for i, row = range m {
		// Squareness first: a short or long row makes the remaining
		// per-entry checks meaningless for this row.
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, expected %d", ErrMatrixNotSquare, i, len(row), n)
		}
		for j, v = range row {
			// NaN is the only non-numeric float64; it would poison every
			// comparison inside the engine, so reject it here.
			if math.IsNaN(v) {
				return fmt.Errorf("%w at [%d][%d]", ErrWeightNaN, i, j)
			}
			// Negative weights (including -Inf) break Dijkstra's greedy
			// finalization invariant.
			if v < 0 {
				return fmt.Errorf("%w at [%d][%d]: %v", ErrWeightNegative, i, j, v)
			}
		}
	}

	return nil
}
