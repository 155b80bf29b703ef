// Package pathtrace is a single-source shortest-path engine that records a
// complete, replayable trace of every algorithmic decision — visit order,
// relaxations, frontier state — for later step-by-step playback.
//
// 🚀 What is pathtrace?
//
//	A small, deterministic, zero-side-effect library that brings together:
//		• Matrix tooling: parse, validate and convert dense adjacency matrices
//		• Shortest paths: Dijkstra with a full per-step execution trace
//		• Query façade: path reconstruction & distance lookup for any node
//		• Fixtures: a library of canned graphs for demos and tests
//
// ✨ Why choose pathtrace?
//
//   - Deterministic – identical inputs produce byte-identical traces
//   - Replayable – every step owns independent snapshots of all live state
//   - Pure Go – no cgo, no I/O, no hidden state between calls
//   - Beginner-friendly – minimal API, clear, intuitive naming
//
// Everything is organized under three subpackages:
//
//	matrix/   — adjacency-matrix parsing, validation & neighbor-list views
//	dijkstra/ — the traced shortest-path engine, result façade & summaries
//	fixtures/ — predefined example graphs, index-aligned labels included
//
// Quick ASCII example:
//
//	    A──4──B
//	    │    ╱│
//	    2   1 5
//	    │ ╱   │
//	    C──8──D
//
//	source A: dist[B]=3 via C, dist[D]=8 via A→C→B→D.
//
// Dive into the per-package docs for contracts, complexity and examples.
//
//	go get github.com/katalvlaran/pathtrace
package pathtrace
