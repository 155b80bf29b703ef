// Package dijkstra: sentinel errors, step discriminators and configuration
// options for the traced shortest-path engine.

package dijkstra

import (
	"errors"
)

// NoNode is the sentinel node index meaning "no node": the predecessor of
// the source (and of every unreachable node), and the Current field of the
// final Step.
const NoNode = -1

// ErrSourceOutOfRange is returned by Run when the source index is not a
// valid node index for the given matrix order. It is deliberately distinct
// from the matrix package's malformed-input sentinels: the matrix itself may
// be perfectly valid.
var ErrSourceOutOfRange = errors.New("dijkstra: source node out of range")

// StepKind discriminates the observable events recorded in a trace, so
// consumers can filter or style steps without parsing description text.
type StepKind int

const (
	// StepInitialize is the single first step: source distance set to 0,
	// all others to +Inf, frontier seeded with the source.
	StepInitialize StepKind = iota

	// StepVisit marks a node being finalized (popped from the frontier with
	// its proven shortest distance).
	StepVisit

	// StepRelax marks one successful relaxation: a neighbor's best-known
	// distance improved and its predecessor was rerouted.
	StepRelax

	// StepFinish is the single terminal step recorded once the frontier is
	// exhausted; its Current is NoNode.
	StepFinish
)

// String returns a stable lower-case name for the step kind.
func (k StepKind) String() string {
	switch k {
	case StepInitialize:
		return "initialize"
	case StepVisit:
		return "visit"
	case StepRelax:
		return "relax"
	case StepFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Options configures a single Run invocation.
type Options struct {
	// Labels holds optional display names, index-aligned to matrix rows.
	// They are used only for human-readable descriptions, never for
	// identity, and are ignored entirely unless exactly N are provided.
	Labels []string

	// RecordTrace controls per-step trace recording (default true).
	RecordTrace bool
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns the Options used when no overrides are supplied:
// no labels (numeric indices) and full trace recording.
func DefaultOptions() Options {
	return Options{
		Labels:      nil,
		RecordTrace: true,
	}
}

// WithLabels sets display names for trace descriptions. If the slice length
// does not match the matrix order, every node falls back to its numeric
// index as a string.
func WithLabels(labels []string) Option {
	return func(o *Options) {
		o.Labels = labels
	}
}

// WithoutTrace disables step recording: Result.Steps will be nil while the
// final distance and predecessor maps are computed as usual. Use this when
// only the answers matter and the graph is large, since each recorded step
// deep-copies O(V) state.
func WithoutTrace() Option {
	return func(o *Options) {
		o.RecordTrace = false
	}
}
