// Package bfs: options, sentinel errors, and the Result type.
package bfs

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/visigraph/visigraph/core"
	"github.com/visigraph/visigraph/timing"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the visitor's Source id is
	// non-negative but outside the graph's node range.
	ErrSourceNotFound = errors.New("bfs: source node not found")

	// ErrNoPath is returned by Result.PathTo for undiscovered targets.
	ErrNoPath = errors.New("bfs: no path to node")
)

// Option configures a BFS run via functional arguments.
type Option func(*Options)

// Options holds ambient collaborators for a run. The traversal semantics
// themselves are fixed; options only attach diagnostics.
type Options struct {
	// Log receives Debug-level traversal diagnostics. Never nil after
	// DefaultOptions.
	Log *slog.Logger

	// Timer, when non-nil, brackets the run under TimerSlot.
	Timer     *timing.Recorder
	TimerSlot int
}

// DefaultOptions returns Options with a discard logger and no timer.
func DefaultOptions() Options {
	return Options{
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger attaches a structured logger for run diagnostics.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Log = l
		}
	}
}

// WithTimer records the run's wall time under slot in rec.
// Panics on a nil recorder (programmer error).
func WithTimer(rec *timing.Recorder, slot int) Option {
	if rec == nil {
		panic("bfs: WithTimer(nil)")
	}
	return func(o *Options) {
		o.Timer = rec
		o.TimerSlot = slot
	}
}

// Result holds the outcome of one BFS run.
//
// Parent and Visited are the run-scoped arrays indexed by node id:
// Parent[id] is the first discoverer, core.Root for a component start,
// core.Invalid for a node the run never discovered.
type Result struct {
	// Order lists node ids in processing (OnNodeProcess) order.
	Order []core.NodeID

	// Parent is the shortest-path tree of the run.
	Parent []core.NodeID

	// Visited flags the nodes that were processed.
	Visited []bool

	// Components counts the connected components opened.
	Components int

	// Aborted reports that a hook returned visit.Abort.
	Aborted bool
}

// PathTo reconstructs the root→dest node sequence by walking Parent
// links. Returns ErrNoPath when dest was never discovered.
func (r *Result) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if dest < 0 || int(dest) >= len(r.Parent) || r.Parent[dest] == core.Invalid {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, dest)
	}
	var path []core.NodeID
	for cur := dest; ; cur = r.Parent[cur] {
		path = append(path, cur)
		if r.Parent[cur] == core.Root {
			break
		}
	}
	// reverse into root→dest order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
