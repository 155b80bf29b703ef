// Package dijkstra: trace types and snapshot recording.
//
// A trace is the ordered sequence of Steps describing how the engine reached
// its final result. Steps are append-only and never mutated after being
// recorded; each step owns deep, independent copies of the distance map, the
// predecessor map, the finalized set and the frontier, so that later
// mutation of the live algorithm state cannot corrupt historical steps.

package dijkstra

import "sort"

// FrontierEntry is one (tentative distance, node index) candidate in the
// frontier. Ordering is by Distance ascending, ties by Node ascending — the
// canonical pop order that makes traces deterministic.
type FrontierEntry struct {
	Distance float64 // tentative distance from the source
	Node     int     // candidate node index
}

// Step is an immutable snapshot taken at one observable event of the run.
type Step struct {
	// Number is the step's position in Result.Steps (contiguous from 0).
	Number int

	// Kind discriminates the event: initialize, visit, relax or finish.
	Kind StepKind

	// Current is the node just acted upon: the source at initialization,
	// the visiting node for visit/relax steps, NoNode on the final step.
	Current int

	// Visited holds the indices of all nodes finalized so far, ascending.
	Visited []int

	// Distances is a full copy of the best-known distance map at this
	// point; +Inf marks nodes not yet discovered.
	Distances []float64

	// Predecessors is a full copy of the predecessor map at this point;
	// NoNode marks nodes without a predecessor.
	Predecessors []int

	// Frontier is a snapshot of the current frontier contents, sorted by
	// (Distance, Node) — i.e. in canonical pop order. Stale duplicates kept
	// by the lazy-deletion strategy appear here until they are popped.
	Frontier []FrontierEntry

	// Description is the human-readable account of what happened, using
	// node labels when provided.
	Description string
}

// record appends one Step snapshot to the trace. No-op when tracing is off.
// Complexity: O(V + F log F) per call, F = current frontier size.
func (r *runner) record(kind StepKind, current int, description string) {
	if !r.opts.RecordTrace {
		return
	}

	r.steps = append(r.steps, Step{
		Number:       len(r.steps),
		Kind:         kind,
		Current:      current,
		Visited:      r.visitedSnapshot(),
		Distances:    append([]float64(nil), r.dist...),
		Predecessors: append([]int(nil), r.prev...),
		Frontier:     r.frontierSnapshot(),
		Description:  description,
	})
}

// visitedSnapshot returns the finalized node indices in ascending order.
// Scanning the boolean set in index order yields a sorted slice for free.
func (r *runner) visitedSnapshot() []int {
	out := make([]int, 0, r.visitedCount)
	for node, done := range r.visited {
		if done {
			out = append(out, node)
		}
	}

	return out
}

// frontierSnapshot copies the live heap contents and sorts them into
// canonical pop order. The heap's internal layout is an implementation
// artifact; the sorted view is the stable contract consumers replay.
func (r *runner) frontierSnapshot() []FrontierEntry {
	out := append([]FrontierEntry(nil), r.pq...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}

		return out[i].Node < out[j].Node
	})

	return out
}
