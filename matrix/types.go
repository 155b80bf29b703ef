// Package matrix: core value types shared by the parser, the validator and
// the adjacency builder.

package matrix

// Matrix is a dense N×N adjacency grid. Matrix[i][j] is the weight of the
// edge i→j; 0 and +Inf both mean "no edge" (see the package doc for the
// rationale behind this ambiguity). Diagonal entries are ignored by every
// consumer regardless of value.
//
// A Matrix is plain data: it carries no synchronization and no hidden
// invariants beyond what Validate enforces. Callers that share one Matrix
// across goroutines must treat it as read-only.
type Matrix [][]float64

// Order returns the number of nodes N (the number of rows).
// Complexity: O(1).
func (m Matrix) Order() int { return len(m) }

// Clone returns a deep copy of m. Mutating the clone never affects the
// original, making it safe to hand the copy to independent callers.
// Complexity: O(N²).
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// Neighbor is one outgoing edge in a NeighborList: the target node index
// and the (strictly positive, finite) edge weight.
type Neighbor struct {
	To     int     // column index of the edge target
	Weight float64 // edge weight, 0 < Weight < +Inf by construction
}

// NeighborList is the sparse, read-only view of a Matrix: for each node
// index it holds the ordered sequence of outgoing edges, ascending by
// target index. Built once per run by NewNeighborList.
type NeighborList [][]Neighbor
