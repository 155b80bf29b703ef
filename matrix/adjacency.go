// Package matrix: dense → sparse adjacency conversion.

package matrix

import "math"

// NewNeighborList builds the sparse neighbor-list view of m.
//
// An edge i→j exists iff i ≠ j and m[i][j] is finite and strictly greater
// than zero; 0 and +Inf are both "no edge" (see the package doc), and
// self-loops are dropped regardless of value. Directed semantics are
// preserved exactly as given — the builder never symmetrizes.
//
// Each per-node slice is ordered ascending by target index, which is what
// makes downstream traversal (and therefore the engine's trace) fully
// deterministic.
//
// Assumes m has passed Validate; call order is Parse/Validate → here.
// Complexity: O(N²) time, O(V + E) space.
func NewNeighborList(m Matrix) NeighborList {
	n := m.Order()
	nl := make(NeighborList, n)
	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		var row []Neighbor // lazily grown; most rows are sparse
		for j = 0; j < n; j++ {
			if i == j {
				continue // self-loops are ignored
			}
			w = m[i][j]
			if w <= 0 || math.IsInf(w, 1) {
				continue // no edge under the 0/+Inf sentinel convention
			}
			row = append(row, Neighbor{To: j, Weight: w})
		}
		nl[i] = row
	}

	return nl
}
