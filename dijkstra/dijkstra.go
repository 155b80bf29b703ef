// Package dijkstra: the traced shortest-path engine.
//
// Notes on implementation choices:
//
//   - We convert the dense matrix to a sparse neighbor list once per run
//     (O(V²)) so the relaxation loop is O(V + E).
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and silently discarding stale entries when popped — no step is
//     recorded for a stale pop.
//   - Ties in the frontier resolve by ascending node index, so insertion
//     order never affects the trace.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/pathtrace/matrix"
)

// Run executes Dijkstra's algorithm from the given source node over the
// adjacency matrix m, producing the final distance/predecessor maps and
// (unless WithoutTrace is set) the ordered trace of every step taken.
//
// Preconditions:
//
//   - m must have passed matrix.Validate; Run does not re-check weight
//     signs or shape, and its correctness guarantee is conditional on a
//     validated input.
//   - source must be a valid node index, otherwise ErrSourceOutOfRange.
//
// The run terminates because each pop removes one frontier entry and pushes
// are bounded by successful relaxations, which are bounded because distances
// strictly decrease and are bounded below by zero. Nodes are finalized in
// non-decreasing order of true distance (greedy correctness under
// non-negative weights); unreachable nodes keep +Inf and NoNode.
//
// Complexity: O((V + E) log V) plus O(V) per recorded step; see package doc.
func Run(m matrix.Matrix, source int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the source index against the matrix order. This is the
	//    engine's only input check; everything else is the validator's job.
	n := m.Order()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d not in [0, %d)", ErrSourceOutOfRange, source, n)
	}

	// 3) Resolve per-node display labels once; descriptions never look at
	//    cfg.Labels again.
	labels := resolveLabels(cfg.Labels, n)

	// 4) Prepare the runner with all maps and the heap.
	r := &runner{
		nl:      matrix.NewNeighborList(m),
		opts:    cfg,
		labels:  labels,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(frontierPQ, 0, n),
		source:  source,
	}

	// 5) Initialize state, then drain the frontier.
	r.init()
	r.process()

	// 6) Package the immutable result; the runner is discarded, so the
	//    caller owns every returned slice exclusively.
	return &Result{
		Source:       source,
		Labels:       labels,
		Distances:    r.dist,
		Predecessors: r.prev,
		Steps:        r.steps,
	}, nil
}

// runner holds the mutable state for a single Run execution.
type runner struct {
	nl           matrix.NeighborList // sparse adjacency view, read-only
	opts         Options             // configuration for this run
	labels       []string            // resolved display names, length V
	dist         []float64           // node → best-known distance from source
	prev         []int               // node → predecessor on the shortest path
	visited      []bool              // node → finalized flag
	visitedCount int                 // number of finalized nodes
	pq           frontierPQ          // min-heap frontier (lazy decrease-key)
	steps        []Step              // recorded trace, append-only
	source       int                 // source node index
}

// init sets up initial distances and predecessors, seeds the frontier with
// (0, source), and records the initialization step.
func (r *runner) init() {
	// 1) dist[v] = +Inf and prev[v] = NoNode for all v.
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = NoNode
	}

	// 2) Distance to the source is zero.
	r.dist[r.source] = 0

	// 3) Seed the frontier with exactly (0, source).
	heap.Init(&r.pq)
	heap.Push(&r.pq, FrontierEntry{Distance: 0, Node: r.source})

	// 4) Record the initial state.
	r.record(StepInitialize, r.source,
		fmt.Sprintf("Initialize: set distance to source node %s = 0, all others = %s",
			r.labels[r.source], infSymbol))
}

// process is the core loop: repeatedly extract the minimum-distance frontier
// entry, finalize it, and relax its outgoing edges, until the frontier is
// exhausted. A terminal step is recorded at the end; the engine never
// resumes after it.
func (r *runner) process() {
	var entry FrontierEntry
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (distance, node) entry.
		entry = heap.Pop(&r.pq).(FrontierEntry)

		// 2) Stale duplicate under lazy deletion: discard silently, no step.
		if r.visited[entry.Node] {
			continue
		}

		// 3) Finalize the node; its distance is now proven.
		r.visited[entry.Node] = true
		r.visitedCount++
		r.record(StepVisit, entry.Node,
			fmt.Sprintf("Visit node %s (distance = %s)",
				r.labels[entry.Node], FormatDistance(entry.Distance)))

		// 4) Relax all outgoing edges of the finalized node.
		r.relax(entry.Node)
	}

	// 5) Frontier exhausted: record the single terminal step.
	r.record(StepFinish, NoNode,
		"Algorithm complete: all reachable nodes have been visited.")
}

// relax examines each outgoing neighbor of u in ascending index order and
// applies the relaxation rule: if the path through u is strictly shorter
// than the neighbor's best-known distance, update distance and predecessor,
// push a fresh frontier entry, and record one step per improvement.
//
// Assumes dist[u] is finalized before the call.
func (r *runner) relax(u int) {
	var (
		newDist float64
		oldDist float64
	)
	for _, nb := range r.nl[u] {
		// Finalized neighbors already hold their proven distance.
		if r.visited[nb.To] {
			continue
		}

		// Candidate distance via source → … → u → neighbor.
		newDist = r.dist[u] + nb.Weight

		// Strict inequality: equal-length paths never reroute, which keeps
		// the predecessor map (and the trace) stable.
		if newDist >= r.dist[nb.To] {
			continue
		}

		oldDist = r.dist[nb.To]
		r.dist[nb.To] = newDist
		r.prev[nb.To] = u

		// Lazy decrease-key: push a duplicate, stale entries are discarded
		// on pop.
		heap.Push(&r.pq, FrontierEntry{Distance: newDist, Node: nb.To})

		// One discrete observable event per successful relaxation.
		r.record(StepRelax, u,
			fmt.Sprintf("Update distance to %s: %s -> %s (via %s)",
				r.labels[nb.To], FormatDistance(oldDist), FormatDistance(newDist), r.labels[u]))
	}
}

// resolveLabels returns the per-node display names used in descriptions:
// the provided labels when exactly n are given, otherwise every node falls
// back to its numeric index as a string.
func resolveLabels(labels []string, n int) []string {
	if len(labels) == n {
		return append([]string(nil), labels...)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}

	return out
}

// frontierPQ is a min-heap of FrontierEntry ordered by Distance ascending,
// ties broken by Node ascending for determinism.
type frontierPQ []FrontierEntry

// Len returns the number of entries in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller distance first, then smaller index.
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].Distance != pq[j].Distance {
		return pq[i].Distance < pq[j].Distance
	}

	return pq[i].Node < pq[j].Node
}

// Swap swaps two elements in the heap.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new entry onto the heap. Called by heap.Push.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(FrontierEntry)) }

// Pop removes and returns the last element. Called by heap.Pop after it has
// swapped the minimum to the end.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	*pq = old[:n-1]

	return entry
}
