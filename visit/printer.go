// Package visit: stock visitors usable as-is or as references for custom ones.
package visit

import (
	"fmt"
	"io"

	"github.com/visigraph/visigraph/core"
)

// Printer writes each processed node id followed by a space, and a newline
// at the end of every component. Zero value is unusable; use NewPrinter.
type Printer struct {
	Base
	out    io.Writer
	source core.NodeID
}

// NewPrinter returns a Printer writing to out, starting at node 0.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, source: core.Invalid}
}

// NewPrinterFrom returns a Printer starting the traversal at source.
func NewPrinterFrom(out io.Writer, source core.NodeID) *Printer {
	return &Printer{out: out, source: source}
}

// Source returns the configured start node.
func (p *Printer) Source() core.NodeID { return p.source }

// OnNodeProcess prints the node id.
func (p *Printer) OnNodeProcess(_ Walk, n *core.Node) NodeAction {
	fmt.Fprintf(p.out, "%d ", n.ID)

	return Continue
}

// OnEndComponentVisit terminates the component's output line.
func (p *Printer) OnEndComponentVisit(Walk) {
	fmt.Fprintln(p.out)
}

// Recorder captures the order in which hooks fired. Intended for tests and
// examples; every action-returning hook answers the configured Action
// (zero value: Continue everywhere, start at node 0).
type Recorder struct {
	Base

	// Processed lists node ids in OnNodeProcess order.
	Processed []core.NodeID

	// Begun lists node ids in OnBeginNodeProcess order.
	Begun []core.NodeID

	// Ended lists node ids in OnEndNodeProcess order.
	Ended []core.NodeID

	// Revisited lists node ids in OnNodeAlreadyVisited order.
	Revisited []core.NodeID

	// Components counts matched start/end component pairs.
	ComponentStarts int
	ComponentEnds   int

	// Start overrides the traversal source when positive. Zero keeps the
	// default, which starts at node 0 anyway.
	Start core.NodeID

	// ActionAt, when non-nil, maps a node id to the action OnNodeProcess
	// should return for it.
	ActionAt map[core.NodeID]NodeAction
}

// Source returns the configured start node, or "unset" for the zero value.
func (r *Recorder) Source() core.NodeID {
	if r.Start > 0 {
		return r.Start
	}

	return core.Invalid
}

func (r *Recorder) OnStartComponentVisit(Walk) { r.ComponentStarts++ }
func (r *Recorder) OnEndComponentVisit(Walk)   { r.ComponentEnds++ }

func (r *Recorder) OnBeginNodeProcess(_ Walk, n *core.Node) NodeAction {
	r.Begun = append(r.Begun, n.ID)

	return Continue
}

func (r *Recorder) OnNodeProcess(_ Walk, n *core.Node) NodeAction {
	r.Processed = append(r.Processed, n.ID)
	if act, ok := r.ActionAt[n.ID]; ok {
		return act
	}

	return Continue
}

func (r *Recorder) OnEndNodeProcess(_ Walk, n *core.Node) NodeAction {
	r.Ended = append(r.Ended, n.ID)

	return Continue
}

func (r *Recorder) OnNodeAlreadyVisited(_ Walk, n *core.Node) NodeAction {
	r.Revisited = append(r.Revisited, n.ID)

	return Continue
}
