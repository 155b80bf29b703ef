// Package dijkstra provides a precise, deterministic implementation of
// Dijkstra's shortest-path algorithm over a dense adjacency matrix, recording
// a complete, replayable trace of every algorithmic decision.
//
// Overview:
//
//   - Run computes the minimum-cost path from a single source node to all
//     reachable nodes in O((V + E) log V) time, where V = matrix order and
//     E = edge count.
//   - It relies on a min-heap (priority queue) to always expand the
//     next-closest node, with ties broken by ascending node index so that
//     insertion order never affects the outcome.
//   - Every observable event — initialization, each node visit, each
//     successful relaxation, completion — is recorded as one Step holding
//     deep, independent snapshots of the finalized set, the distance map,
//     the predecessor map and the frontier. Later mutation of live state
//     never retroactively changes an earlier step.
//
// When to use:
//
//   - Whenever shortest-path results must be explainable or replayable:
//     step-through visualizations, teaching tools, audit trails.
//   - As a plain shortest-path solver; WithoutTrace() skips step recording
//     and leaves only the final distance/predecessor maps.
//
// Determinism:
//
//   - Given the same matrix, source and labels, the sequence, count and
//     content of Steps are identical across runs. Neighbors are examined in
//     ascending index order and frontier ties resolve by node index.
//
// Purity and concurrency:
//
//   - Run is a pure function of (matrix, source, options): no I/O, no state
//     across invocations. Concurrent calls are safe as long as each call
//     receives its own input copy; there is no shared mutable structure.
//   - There is no cancellation at this layer; callers needing timeouts must
//     wrap Run at a higher level.
//
// Error handling (sentinel):
//
//   - ErrSourceOutOfRange:
//     Returned if the source index is not in [0, V). This is the engine's
//     only failure mode: weight-domain validation (non-negativity, shape)
//     is the matrix package's responsibility, invoked upstream, and the
//     engine's correctness guarantee is conditional on it.
//   - An unreachable target is NOT an error: its distance is +Inf and
//     Result.PathTo reports (nil, false).
//
// API reference:
//
//	func Run(m matrix.Matrix, source int, opts ...Option) (*Result, error)
//
//	  - m:       validated N×N adjacency matrix (0/+Inf = no edge).
//	  - source:  starting node index in [0, N).
//	  - opts:    zero or more functional options:
//	      • WithLabels([]string): display names for trace descriptions;
//	        ignored entirely unless exactly N labels are given.
//	      • WithoutTrace():       skip step recording (Result.Steps == nil).
//	  - Result:  final distances, predecessors, ordered Steps, query façade
//	             (PathTo, DistanceTo) and per-node Summary rows.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the algorithm itself; with tracing on,
//     each of the O(V + E) recorded steps copies O(V) state, so a full
//     trace costs O((V + E)·V) time and space. Tracing is a playback
//     feature, not a big-graph feature — use WithoutTrace() to scale.
//   - Space: O(V + E) without tracing (lazy decrease-key keeps stale heap
//     entries until popped).
package dijkstra
