// Package dfs: the traversal order enum, options, sentinel errors, and
// the Result type.
package dfs

import (
	"errors"
	"io"
	"log/slog"

	"github.com/visigraph/visigraph/core"
	"github.com/visigraph/visigraph/timing"
)

// Order selects when OnNodeProcess fires relative to a node's children.
type Order uint8

const (
	// PreOrder processes a node before recursing into its children.
	PreOrder Order = iota

	// PostOrder processes a node after all its children finished.
	PostOrder
)

// String returns the order name for diagnostics.
func (o Order) String() string {
	if o == PostOrder {
		return "PostOrder"
	}

	return "PreOrder"
}

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrSourceNotFound is returned when the visitor's Source id is
	// non-negative but outside the graph's node range.
	ErrSourceNotFound = errors.New("dfs: source node not found")
)

// Option configures a DFS run via functional arguments.
type Option func(*Options)

// Options holds ambient collaborators for a run; traversal semantics are
// fixed.
type Options struct {
	// Log receives Debug-level run diagnostics. Never nil after
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
		panic("dfs: WithTimer(nil)")
	}
	return func(o *Options) {
		o.Timer = rec
		o.TimerSlot = slot
	}
}

// Result holds the outcome of one DFS run.
type Result struct {
	// Order lists node ids in processing (OnNodeProcess) order: discovery
	// order for PreOrder, finish order for PostOrder.
	Order []core.NodeID

	// Parent maps each node to its discoverer, core.Root for component
	// roots, core.Invalid for nodes the run never reached.
	Parent []core.NodeID

	// Visited flags the nodes that were reached.
	Visited []bool

	// Components counts the connected components opened.
	Components int

	// Aborted reports that a hook returned visit.Abort.
	Aborted bool
}
