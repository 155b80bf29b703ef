// Package dijkstra: the query façade over a finished run.

package dijkstra

import "math"

// Result is the immutable outcome of one Run invocation: the final distance
// and predecessor maps, the ordered trace, the resolved labels and the
// source index. It is created once per run and owned by the caller; the
// engine keeps no reference to it.
type Result struct {
	Source       int      // source node index of this run
	Labels       []string // resolved display names, length Order()
	Distances    []float64
	Predecessors []int
	Steps        []Step // nil when the run used WithoutTrace
}

// Order returns the number of nodes in the graph this result was computed on.
func (r *Result) Order() int { return len(r.Distances) }

// DistanceTo returns the final shortest distance from the source to target,
// or +Inf when the target is unreachable or outside the known index range.
// Out-of-range is not an error here: "unknown node" and "unreachable node"
// answer the same question the same way.
// Complexity: O(1).
func (r *Result) DistanceTo(target int) float64 {
	if target < 0 || target >= len(r.Distances) {
		return math.Inf(1)
	}

	return r.Distances[target]
}

// PathTo reconstructs the shortest path from the source to target, in
// source-to-target order. The second return value is false when no path
// exists (unreachable target or out-of-range index).
//
// The predecessor chain is acyclic by construction (a node's predecessor is
// only ever set before the node itself is finalized), but the walk is still
// bounded at Order() hops so a malformed map handed in from outside can
// never loop forever.
//
// Complexity: O(path length).
func (r *Result) PathTo(target int) ([]int, bool) {
	// Unknown or unreachable targets have no path.
	if target < 0 || target >= len(r.Distances) {
		return nil, false
	}
	if math.IsInf(r.Distances[target], 1) {
		return nil, false
	}

	// Walk the predecessor chain backwards, defensively bounded.
	n := len(r.Predecessors)
	path := make([]int, 0, 8)
	for cur := target; cur != NoNode; cur = r.Predecessors[cur] {
		if len(path) > n {
			return nil, false // malformed chain; cannot happen for engine-built results
		}
		path = append(path, cur)
	}

	// Reverse in place to get source → target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
