// Package dfs: the depth-first traversal engine.
package dfs

import (
	"fmt"

	"github.com/visigraph/visigraph/core"
	"github.com/visigraph/visigraph/visit"
)

// walker encapsulates the mutable state of one run. It implements
// visit.Walk for the hooks it drives.
type walker struct {
	graph   *core.Graph
	v       visit.Visitor
	order   Order
	visited []bool
	parent  []core.NodeID
	res     *Result
}

// Run performs a depth-first traversal of g in the given order, driving v
// through the hook protocol. A nil visitor runs the bare traversal. An
// empty graph is a no-op. Returns ErrGraphNil or ErrSourceNotFound on
// precondition violations; visit.Abort terminates the run early and is
// reported through Result.Aborted, not as an error.
func Run(g *core.Graph, v visit.Visitor, order Order, opts ...Option) (*Result, error) {
	// 1) Preconditions.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Timer != nil {
		o.Timer.Start(o.TimerSlot, "dfs")
		defer o.Timer.Stop(o.TimerSlot)
	}
	if v == nil {
		v = visit.Base{}
	}

	// 2) Run-scoped state; parent starts all-Invalid.
	n := g.NodeCount()
	res := &Result{
		Order:   make([]core.NodeID, 0, n),
		Parent:  make([]core.NodeID, n),
		Visited: make([]bool, n),
	}
	for i := range res.Parent {
		res.Parent[i] = core.Invalid
	}
	if n == 0 {
		// Traversal on zero nodes is defined to be a no-op.
		return res, nil
	}

	// 3) Resolve the start node: negative means node 0.
	start := v.Source()
	if start < 0 {
		start = 0
	}
	if int(start) >= n {
		return nil, fmt.Errorf("%w: %d", ErrSourceNotFound, start)
	}

	w := &walker{
		graph:   g,
		v:       v,
		order:   order,
		visited: res.Visited,
		parent:  res.Parent,
		res:     res,
	}

	// 4) Drive the forest: source component first, then ascending scan.
	v.OnStartVisit(w)
	if w.component(start) != visit.Abort {
		for id := core.NodeID(0); int(id) < n; id++ {
			if w.visited[id] {
				continue
			}
			if w.component(id) == visit.Abort {
				break
			}
		}
	}
	v.OnEndVisit(w)

	o.Log.Debug("dfs run finished",
		"order", order.String(),
		"nodes", n,
		"processed", len(res.Order),
		"components", res.Components,
		"aborted", res.Aborted)

	return res, nil
}

// component brackets and runs one DFS tree rooted at id.
func (w *walker) component(id core.NodeID) visit.NodeAction {
	w.res.Components++
	w.v.OnStartComponentVisit(w)
	act := w.step(id, core.Root)
	w.v.OnEndComponentVisit(w)
	if act == visit.Abort {
		w.res.Aborted = true
	}

	return act
}

// step visits one node and recurses into its outgoing-edge destinations
// in edge-list order. The returned action is visit.Abort to unwind the
// whole run, any other value to let the caller continue with siblings.
func (w *walker) step(id, parent core.NodeID) visit.NodeAction {
	node := &w.graph.Nodes()[id]

	// 1) A back or cross edge: delegate and return the visitor's verdict.
	if w.visited[id] {
		return w.v.OnNodeAlreadyVisited(w, node)
	}

	// 2) Discover the node.
	w.visited[id] = true
	w.parent[id] = parent

	// 3) Both Abort and SkipChildren bypass the subtree; SkipChildren is
	// equivalent to a leaf visit here.
	if act := w.v.OnBeginNodeProcess(w, node); act != visit.Continue {
		return act
	}

	if w.order == PreOrder {
		w.res.Order = append(w.res.Order, id)
		if act := w.v.OnNodeProcess(w, node); act != visit.Continue {
			return act
		}
	}

	// 4) Recurse; an Abort from any child skips the remaining siblings.
	edges := w.graph.Edges()
	for _, eid := range node.Edges {
		if w.step(edges[eid].Destination, id) == visit.Abort {
			return visit.Abort
		}
	}

	if w.order == PostOrder {
		w.res.Order = append(w.res.Order, id)
		if w.v.OnNodeProcess(w, node) == visit.Abort {
			return visit.Abort
		}
	}

	if w.v.OnEndNodeProcess(w, node) == visit.Abort {
		return visit.Abort
	}

	return visit.Continue
}

// Graph implements visit.Walk.
func (w *walker) Graph() *core.Graph { return w.graph }

// Parent implements visit.Walk.
func (w *walker) Parent(id core.NodeID) core.NodeID {
	if id < 0 || int(id) >= len(w.parent) {
		return core.Invalid
	}

	return w.parent[id]
}

// Visited implements visit.Walk.
func (w *walker) Visited(id core.NodeID) bool {
	return id >= 0 && int(id) < len(w.visited) && w.visited[id]
}

// PathTo implements visit.Walk.
func (w *walker) PathTo(id core.NodeID) []core.NodeID {
	if id < 0 || int(id) >= len(w.parent) || w.parent[id] == core.Invalid {
		return nil
	}
	var path []core.NodeID
	for cur := id; ; cur = w.parent[cur] {
		path = append(path, cur)
		if w.parent[cur] == core.Root {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
