// Package search finds shortest-hop paths on unweighted graphs by driving
// a path-finding visitor through a BFS run.
//
// PathFinder watches OnNodeProcess for the destination node; because BFS
// parent links follow the first discoverer, walking them back from the
// destination yields a minimum-hop path. The "no path" outcome is decided
// as soon as the source's own component completes without reaching the
// destination, which is the earliest point the answer is known; once the
// state is decided the visitor aborts the traversal rather than walking
// the remaining components.
package search

import (
	"errors"
	"fmt"

	"github.com/visigraph/visigraph/bfs"
	"github.com/visigraph/visigraph/core"
	"github.com/visigraph/visigraph/visit"
)

// ErrNoPath indicates the destination is unreachable from the source.
// It is a normal outcome of the query, not a traversal failure.
var ErrNoPath = errors.New("search: no path")

// PathState tracks a PathFinder's progress.
type PathState uint8

const (
	// Uninitialized means the destination has not been reached yet and
	// the source's component is still being explored.
	Uninitialized PathState = iota

	// Found means the destination was processed and a path captured.
	Found

	// NoPath means the source's component completed without reaching the
	// destination.
	NoPath
)

// String returns the state name for diagnostics.
func (s PathState) String() string {
	switch s {
	case Found:
		return "Found"
	case NoPath:
		return "NoPath"
	default:
		return "Uninitialized"
	}
}

// PathFinder is a visit.Visitor that captures the shortest-hop path from
// its source to a destination during a BFS run. One instance serves one
// run; it carries per-run state.
type PathFinder struct {
	visit.Base
	source      core.NodeID
	destination core.NodeID
	state       PathState
	path        []core.NodeID
}

// NewPathFinder returns a PathFinder for a source→destination query.
func NewPathFinder(source, destination core.NodeID) *PathFinder {
	return &PathFinder{source: source, destination: destination}
}

// Source returns the query's start node.
func (f *PathFinder) Source() core.NodeID { return f.source }

// State returns the query outcome so far.
func (f *PathFinder) State() PathState { return f.state }

// Path returns the captured source→destination node sequence, or nil.
func (f *PathFinder) Path() []core.NodeID { return f.path }

// OnBeginNodeProcess aborts the traversal once the outcome is decided;
// components beyond the source's cannot change the answer.
func (f *PathFinder) OnBeginNodeProcess(_ visit.Walk, _ *core.Node) visit.NodeAction {
	if f.state != Uninitialized {
		return visit.Abort
	}

	return visit.Continue
}

// OnNodeProcess captures the parent-link path when the destination is
// processed.
func (f *PathFinder) OnNodeProcess(w visit.Walk, n *core.Node) visit.NodeAction {
	if n.ID == f.destination && f.state == Uninitialized {
		f.state = Found
		f.path = w.PathTo(n.ID)
	}

	return visit.Continue
}

// OnEndComponentVisit decides "no path": the run always starts at the
// source, so an undecided state when its component closes means the
// destination is unreachable.
func (f *PathFinder) OnEndComponentVisit(visit.Walk) {
	if f.state == Uninitialized {
		f.state = NoPath
	}
}

// ShortestPath returns the minimum-hop source→destination node sequence,
// or ErrNoPath when the destination is unreachable. Endpoint ids are
// validated against g. Options are forwarded to the underlying BFS run.
func ShortestPath(g *core.Graph, source, destination core.NodeID, opts ...bfs.Option) ([]core.NodeID, error) {
	if g == nil {
		return nil, bfs.ErrGraphNil
	}
	if _, err := g.Node(source); err != nil {
		return nil, fmt.Errorf("search: source: %w", err)
	}
	if _, err := g.Node(destination); err != nil {
		return nil, fmt.Errorf("search: destination: %w", err)
	}

	f := NewPathFinder(source, destination)
	if _, err := bfs.Run(g, f, opts...); err != nil {
		return nil, err
	}
	if f.State() != Found {
		return nil, fmt.Errorf("%w between %d and %d", ErrNoPath, source, destination)
	}

	return f.Path(), nil
}
