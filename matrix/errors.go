// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions return these sentinels (optionally wrapped with
// positional context) and tests check them via errors.Is. No function panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. When positional context is essential, wrap with
// fmt.Errorf("%w: ctx", ErrX) so callers can still match via errors.Is.

var (
	// ErrNoData is returned by Parse when the input text contains no
	// non-blank lines at all.
	ErrNoData = errors.New("matrix: no data to parse")

	// ErrBadToken is returned by Parse when a value token is neither a
	// float64 literal nor a recognized infinity token. The wrapped message
	// names the 1-based row, 1-based column, and the raw token.
	ErrBadToken = errors.New("matrix: unparseable token")

	// ErrRaggedRows is returned by Parse when the parsed rows do not form a
	// square grid (rows of differing lengths, or row count ≠ column count).
	// It is deliberately distinct from validator failures: a ragged parse is
	// a text-shape problem, not a weight-domain problem.
	ErrRaggedRows = errors.New("matrix: rows have differing lengths")

	// ErrMatrixEmpty is returned by Validate when the matrix has no rows.
	ErrMatrixEmpty = errors.New("matrix: matrix is empty")

	// ErrMatrixNotSquare is returned by Validate when some row does not have
	// exactly as many entries as there are rows.
	ErrMatrixNotSquare = errors.New("matrix: matrix is not square")

	// ErrWeightNaN is returned by Validate when an entry is NaN — the only
	// float64 value that is "not numeric" in this representation.
	ErrWeightNaN = errors.New("matrix: entry is not a number")

	// ErrWeightNegative is returned by Validate when an entry is negative.
	// Dijkstra's greedy finalization is only correct under non-negative
	// weights, so a negative weight is a caller error, never tolerated.
	ErrWeightNegative = errors.New("matrix: negative edge weight")
)
