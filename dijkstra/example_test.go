// Package dijkstra_test provides runnable examples for the traced engine.
// Each example runs via “go test -run Example”, showing code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/matrix"
)

// ExampleRun demonstrates computing shortest paths over an adjacency matrix
// and reconstructing the cheapest route.
// Complexity: O((V+E) log V) plus O(V) per recorded step.
func ExampleRun() {
	// 1) Four nodes; 0 and +Inf would both mean "no edge".
	m := matrix.Matrix{
		{0, 4, 2, 0},
		{4, 0, 1, 5},
		{2, 1, 0, 8},
		{0, 5, 8, 0},
	}

	// 2) Run from node 0 with display labels for the trace.
	res, err := dijkstra.Run(m, 0, dijkstra.WithLabels([]string{"A", "B", "C", "D"}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Query the façade: distance and route to D.
	path, _ := res.PathTo(3)
	fmt.Printf("dist[D]=%v path=%v steps=%d\n", res.DistanceTo(3), path, len(res.Steps))
	// Output: dist[D]=8 path=[0 2 1 3] steps=11
}

// ExampleRun_trace demonstrates stepping through the recorded trace the way
// a playback consumer would: one description per observable event.
func ExampleRun_trace() {
	m := matrix.Matrix{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	}
	res, err := dijkstra.Run(m, 0, dijkstra.WithLabels([]string{"A", "B", "C"}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, step := range res.Steps {
		fmt.Printf("%d [%s] %s\n", step.Number, step.Kind, step.Description)
	}
	// Output:
	// 0 [initialize] Initialize: set distance to source node A = 0, all others = ∞
	// 1 [visit] Visit node A (distance = 0)
	// 2 [relax] Update distance to B: ∞ -> 1 (via A)
	// 3 [relax] Update distance to C: ∞ -> 4 (via A)
	// 4 [visit] Visit node B (distance = 1)
	// 5 [relax] Update distance to C: 4 -> 3 (via B)
	// 6 [visit] Visit node C (distance = 3)
	// 7 [finish] Algorithm complete: all reachable nodes have been visited.
}

// ExampleResult_Summary demonstrates building the per-node results table.
func ExampleResult_Summary() {
	m := matrix.Matrix{
		{0, 2, 0},
		{2, 0, 0},
		{0, 0, 0}, // node 2 is isolated
	}
	res, err := dijkstra.Run(m, 0, dijkstra.WithLabels([]string{"Home", "Mall", "Island"}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, row := range res.Summary() {
		fmt.Printf("%-6s %-3s %s\n", row.Label, row.Distance, row.Status)
	}
	// Output:
	// Home   0   Source
	// Mall   2   Reachable
	// Island ∞   Unreachable
}

// ExampleRun_parsed demonstrates the full pipeline: text → Parse → Run.
func ExampleRun_parsed() {
	m, err := matrix.Parse("0,5\n0,0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Sourced at node 1, the one-way edge 0→1 cannot be walked backwards.
	res, err := dijkstra.Run(m, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[0]=%s\n", dijkstra.FormatDistance(res.DistanceTo(0)))
	// Output: dist[0]=∞
}
