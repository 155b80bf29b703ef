// Package matrix provides the input side of the pathtrace pipeline:
// parsing, validating, and converting dense adjacency matrices into the
// sparse neighbor-list view consumed by the shortest-path engine.
//
// Overview:
//
//   - Matrix is an N×N grid of non-negative float64 weights. An entry of
//     0 or +Inf means "no edge"; anything strictly between means a weighted
//     edge from the row node to the column node. Symmetry is not required,
//     so directed graphs are representable as-is.
//   - Parse turns a delimited text block into a Matrix, accepting commas or
//     whitespace as separators and the tokens "inf", "infinity" and "∞"
//     (case-insensitive) as positive infinity.
//   - Validate enforces the engine's correctness preconditions: non-empty,
//     square, numeric (no NaN), non-negative. Validation is fail-fast: the
//     first violation found is reported, with row/column context.
//   - NewNeighborList converts the dense grid to an ordered sparse view in
//     O(N²) so the engine can traverse in O(V + E).
//
// Known format ambiguity (preserved deliberately):
//
//	A weight of exactly zero is indistinguishable from "no edge". Graphs
//	with genuine zero-weight edges are therefore not representable; callers
//	needing zero-cost links should use a small positive epsilon instead.
//
// Error handling (sentinel):
//
//   - ErrNoData, ErrBadToken, ErrRaggedRows — parser failures.
//   - ErrMatrixEmpty, ErrMatrixNotSquare, ErrWeightNaN, ErrWeightNegative —
//     validator failures.
//
// All sentinels are matchable with errors.Is; contextual detail (row,
// column, offending token or value) is attached via fmt.Errorf("%w: ...").
package matrix
