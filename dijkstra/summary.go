// Package dijkstra: per-node summary rows for results-table consumers.

package dijkstra

import (
	"math"
	"strconv"
)

// infSymbol is the display form of an unreachable (infinite) distance.
const infSymbol = "∞"

// Status classifies a node in a run summary.
type Status int

const (
	// StatusSource marks the run's source node itself.
	StatusSource Status = iota

	// StatusReachable marks a node with a finite shortest distance.
	StatusReachable

	// StatusUnreachable marks a node the source cannot reach.
	StatusUnreachable
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusSource:
		return "Source"
	case StatusReachable:
		return "Reachable"
	case StatusUnreachable:
		return "Unreachable"
	default:
		return "Unknown"
	}
}

// Row is one line of a run summary: the node, its display label, its
// formatted final distance ("∞" when unreachable) and its status.
type Row struct {
	Node     int
	Label    string
	Distance string
	Status   Status
}

// Summary builds one Row per node from the final distance map, in node
// order. It reads only the finished result, so it works the same with or
// without a recorded trace.
// Complexity: O(V).
func (r *Result) Summary() []Row {
	rows := make([]Row, len(r.Distances))
	for node, d := range r.Distances {
		status := StatusReachable
		switch {
		case node == r.Source:
			status = StatusSource
		case math.IsInf(d, 1):
			status = StatusUnreachable
		}
		rows[node] = Row{
			Node:     node,
			Label:    r.Labels[node],
			Distance: FormatDistance(d),
			Status:   status,
		}
	}

	return rows
}

// FormatDistance renders a distance for display: "∞" for +Inf, otherwise the
// shortest float64 representation that round-trips (so whole weights print
// without a trailing ".0").
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return infSymbol
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}
