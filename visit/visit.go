// Package visit: NodeAction, the Walk view, the Visitor interface, and the
// embeddable no-op Base.
package visit

import "github.com/visigraph/visigraph/core"

// NodeAction is the three-state control signal a hook returns to steer
// the traversal that invoked it.
type NodeAction uint8

const (
	// Continue proceeds normally.
	Continue NodeAction = iota

	// Abort terminates the entire traversal immediately, all components
	// included, propagating out through both BFS and DFS.
	Abort

	// SkipChildren processes the current node as usual but does not
	// enqueue (BFS) or recurse into (DFS) its neighbors.
	SkipChildren
)

// String returns the action name for diagnostics.
func (a NodeAction) String() string {
	switch a {
	case Continue:
		return "Continue"
	case Abort:
		return "Abort"
	case SkipChildren:
		return "SkipChildren"
	default:
		return "Unknown"
	}
}

// Walk is the read-only view of an in-progress traversal run handed to
// every hook. It is valid only for the duration of the hook invocation.
//
// Parent and Visited report per-run state owned by the engine; parent
// links are meaningful only for nodes already discovered in this run.
type Walk interface {
	// Graph returns the graph under traversal. Visitors may query it but
	// must not mutate node or edge membership.
	Graph() *core.Graph

	// Parent returns the id of the node that first discovered id in this
	// run, core.Root for a component start, or core.Invalid when id has
	// not been discovered yet.
	Parent(id core.NodeID) core.NodeID

	// Visited reports whether id has been processed in this run.
	Visited(id core.NodeID) bool

	// PathTo walks parent links from id back to its component root and
	// returns the root→id node sequence, or nil when id is undiscovered.
	PathTo(id core.NodeID) []core.NodeID
}

// Visitor is the capability set a traversal drives. All action-returning
// hooks default to Continue in Base.
type Visitor interface {
	// Source returns the traversal start node. A negative id means
	// "unset": the engine starts at node 0.
	Source() core.NodeID

	// OnStartVisit is called exactly once before any node is processed.
	OnStartVisit(w Walk)

	// OnEndVisit is called exactly once after the traversal finishes,
	// whether by exhaustion or Abort.
	OnEndVisit(w Walk)

	// OnStartComponentVisit is called once per connected component, right
	// before its first node is scheduled.
	OnStartComponentVisit(w Walk)

	// OnEndComponentVisit is called once per connected component, after
	// its last node finished.
	OnEndComponentVisit(w Walk)

	// OnBeginNodeProcess is called when a node is reached, before its
	// visited check.
	OnBeginNodeProcess(w Walk, n *core.Node) NodeAction

	// OnNodeProcess is called when a node is processed. It fires exactly
	// once per node unless Abort truncates the run.
	OnNodeProcess(w Walk, n *core.Node) NodeAction

	// OnEndNodeProcess is called after a node (and, for DFS, its
	// descendants) has been processed.
	OnEndNodeProcess(w Walk, n *core.Node) NodeAction

	// OnNodeAlreadyVisited is called when a node that was already
	// processed in this run is reached again: the node arrived through
	// two different parents, which is how a cycle or revisit surfaces.
	// It is not an error.
	OnNodeAlreadyVisited(w Walk, n *core.Node) NodeAction
}

// Base is the no-op Visitor. Embed it and override only the hooks a
// concrete visitor needs.
type Base struct{}

// Source reports "unset"; traversal starts at node 0.
func (Base) Source() core.NodeID { return core.Invalid }

func (Base) OnStartVisit(Walk)          {}
func (Base) OnEndVisit(Walk)            {}
func (Base) OnStartComponentVisit(Walk) {}
func (Base) OnEndComponentVisit(Walk)   {}

func (Base) OnBeginNodeProcess(Walk, *core.Node) NodeAction   { return Continue }
func (Base) OnNodeProcess(Walk, *core.Node) NodeAction        { return Continue }
func (Base) OnEndNodeProcess(Walk, *core.Node) NodeAction     { return Continue }
func (Base) OnNodeAlreadyVisited(Walk, *core.Node) NodeAction { return Continue }
