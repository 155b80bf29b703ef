// Package fixtures: the canned graph definitions and their accessors.

package fixtures

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathtrace/matrix"
)

// ErrUnknownFixture is returned by ByName when no fixture carries the
// requested name. The wrapped message lists the available names.
var ErrUnknownFixture = errors.New("fixtures: unknown fixture")

// Fixture is one predefined example graph: a validated adjacency matrix,
// index-aligned display labels, a human description, and a suggested
// source/target pair for path queries.
type Fixture struct {
	Name        string
	Description string
	Matrix      matrix.Matrix
	Labels      []string
	Source      int // suggested source node index
	Target      int // suggested target node index
}

// clone returns a deep copy of f so callers can mutate their copy freely.
func (f Fixture) clone() Fixture {
	f.Matrix = f.Matrix.Clone()
	f.Labels = append([]string(nil), f.Labels...)

	return f
}

// All returns every fixture, in a stable order (simple graphs first).
// Each call returns fresh deep copies.
func All() []Fixture {
	out := make([]Fixture, len(library))
	for i, f := range library {
		out[i] = f.clone()
	}

	return out
}

// ByName returns the fixture with the given (exact, case-sensitive) name,
// or ErrUnknownFixture naming the available choices.
func ByName(name string) (Fixture, error) {
	for _, f := range library {
		if f.Name == name {
			return f.clone(), nil
		}
	}

	names := make([]string, len(library))
	for i, f := range library {
		names[i] = f.Name
	}

	return Fixture{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownFixture, name, names)
}

// library holds the canonical fixture definitions. Read-only after init;
// accessors always hand out clones.
var library = []Fixture{
	{
		Name:        "Simple 5-Node Graph",
		Description: "A simple undirected weighted graph with 5 nodes. Good for learning the basics.",
		Matrix: matrix.Matrix{
			{0, 4, 2, 0, 0},
			{4, 0, 1, 5, 0},
			{2, 1, 0, 8, 10},
			{0, 5, 8, 0, 2},
			{0, 0, 10, 2, 0},
		},
		Labels: []string{"A", "B", "C", "D", "E"},
		Source: 0,
		Target: 4,
	},
	{
		Name:        "City Road Network",
		Description: "A city road network with distances in minutes. Find the fastest route!",
		Matrix: matrix.Matrix{
			{0, 10, 0, 0, 15, 5},
			{10, 0, 10, 30, 0, 0},
			{0, 10, 0, 12, 5, 0},
			{0, 30, 12, 0, 0, 20},
			{15, 0, 5, 0, 0, 0},
			{5, 0, 0, 20, 0, 0},
		},
		Labels: []string{"Home", "Mall", "Park", "Office", "School", "Gym"},
		Source: 0,
		Target: 3,
	},
	{
		Name:        "Weighted Grid (4x4)",
		Description: "A 4x4 grid graph where each node connects to its neighbors. Navigate from corner to corner!",
		Matrix: matrix.Matrix{
			{0, 1, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{1, 0, 3, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 3, 0, 2, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 2, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0},
			{2, 0, 0, 0, 0, 2, 0, 0, 3, 0, 0, 0, 0, 0, 0, 0},
			{0, 1, 0, 0, 2, 0, 1, 0, 0, 2, 0, 0, 0, 0, 0, 0},
			{0, 0, 4, 0, 0, 1, 0, 3, 0, 0, 1, 0, 0, 0, 0, 0},
			{0, 0, 0, 1, 0, 0, 3, 0, 0, 0, 0, 2, 0, 0, 0, 0},
			{0, 0, 0, 0, 3, 0, 0, 0, 0, 1, 0, 0, 4, 0, 0, 0},
			{0, 0, 0, 0, 0, 2, 0, 0, 1, 0, 2, 0, 0, 3, 0, 0},
			{0, 0, 0, 0, 0, 0, 1, 0, 0, 2, 0, 1, 0, 0, 2, 0},
			{0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 1, 0, 0, 0, 0, 3},
			{0, 0, 0, 0, 0, 0, 0, 0, 4, 0, 0, 0, 0, 2, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 2, 0, 1, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 1, 0, 2},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 2, 0},
		},
		Labels: []string{
			"0", "1", "2", "3", "4", "5", "6", "7",
			"8", "9", "10", "11", "12", "13", "14", "15",
		},
		Source: 0,
		Target: 15,
	},
	{
		Name:        "Directed Graph",
		Description: "A directed weighted graph. Note that edges only go one way!",
		Matrix: matrix.Matrix{
			{0, 5, 10, 0, 0, 0},
			{0, 0, 3, 9, 2, 0},
			{0, 0, 0, 0, 1, 0},
			{0, 0, 0, 0, 0, 4},
			{0, 0, 0, 6, 0, 2},
			{7, 0, 0, 0, 0, 0},
		},
		Labels: []string{"S", "A", "B", "C", "D", "T"},
		Source: 0,
		Target: 5,
	},
	{
		Name:        "Sparse Network",
		Description: "A sparse graph with 8 nodes but few connections. Some paths require many hops!",
		Matrix: matrix.Matrix{
			{0, 7, 0, 0, 0, 14, 9, 0},
			{7, 0, 10, 15, 0, 0, 0, 0},
			{0, 10, 0, 11, 0, 0, 0, 2},
			{0, 15, 11, 0, 6, 0, 0, 0},
			{0, 0, 0, 6, 0, 9, 0, 0},
			{14, 0, 0, 0, 9, 0, 2, 0},
			{9, 0, 0, 0, 0, 2, 0, 0},
			{0, 0, 2, 0, 0, 0, 0, 0},
		},
		Labels: []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		Source: 0,
		Target: 7,
	},
	{
		Name:        "Dense Complete Graph",
		Description: "A complete graph where every node connects to every other node. Many possible paths!",
		Matrix: matrix.Matrix{
			{0, 3, 7, 5, 2},
			{3, 0, 4, 6, 8},
			{7, 4, 0, 2, 5},
			{5, 6, 2, 0, 3},
			{2, 8, 5, 3, 0},
		},
		Labels: []string{"P", "Q", "R", "S", "T"},
		Source: 0,
		Target: 3,
	},
	{
		Name:        "Tree Structure",
		Description: "A tree structure - there's only one path between any two nodes!",
		Matrix: matrix.Matrix{
			{0, 4, 3, 0, 0, 0, 0},
			{4, 0, 0, 5, 2, 0, 0},
			{3, 0, 0, 0, 0, 6, 4},
			{0, 5, 0, 0, 0, 0, 0},
			{0, 2, 0, 0, 0, 0, 0},
			{0, 0, 6, 0, 0, 0, 0},
			{0, 0, 4, 0, 0, 0, 0},
		},
		Labels: []string{"Root", "L1", "R1", "L2", "L3", "R2", "R3"},
		Source: 3,
		Target: 6,
	},
}
