// Package bfs: the breadth-first traversal engine.
package bfs

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
	queue   []core.NodeID
	visited []bool
	parent  []core.NodeID
	res     *Result
}

// Run performs a breadth-first traversal of g, driving v through the hook
// protocol. A nil visitor runs the bare traversal (useful for building a
// parent tree alone). An empty graph is a no-op. Returns ErrGraphNil or
// ErrSourceNotFound on precondition violations; visit.Abort terminates the
// run early and is reported through Result.Aborted, not as an error.
func Run(g *core.Graph, v visit.Visitor, opts ...Option) (*Result, error) {
	// 1) Preconditions.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Timer != nil {
		o.Timer.Start(o.TimerSlot, "bfs")
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
		queue:   make([]core.NodeID, 0, n),
		visited: res.Visited,
		parent:  res.Parent,
		res:     res,
	}

	// 4) Seed the first component and bracket the run.
	w.parent[start] = core.Root
	w.queue = append(w.queue, start)
	res.Components = 1
	v.OnStartVisit(w)
	v.OnStartComponentVisit(w)

	w.loop()

	v.OnEndComponentVisit(w)
	v.OnEndVisit(w)

	o.Log.Debug("bfs run finished",
		"nodes", n,
		"processed", len(res.Order),
		"components", res.Components,
		"aborted", res.Aborted)

	return res, nil
}

// loop processes the queue until exhaustion or Abort, opening the next
// component whenever the queue drains with unprocessed nodes left.
func (w *walker) loop() {
	nodes := w.graph.Nodes()
	edges := w.graph.Edges()

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		node := &nodes[cur]

		act := w.v.OnBeginNodeProcess(w, node)
		if act == visit.Abort {
			w.res.Aborted = true
			return
		}
		if act == visit.SkipChildren {
			w.nextComponentIfDrained()
			continue
		}

		// A node reached through two different parents: surface the
		// revisit and move on, it contributes nothing further.
		if w.visited[cur] {
			if w.v.OnNodeAlreadyVisited(w, node) == visit.Abort {
				w.res.Aborted = true
				return
			}
			w.nextComponentIfDrained()
			continue
		}

		w.visited[cur] = true
		w.res.Order = append(w.res.Order, cur)

		act = w.v.OnNodeProcess(w, node)
		if act == visit.Abort {
			w.res.Aborted = true
			return
		}
		if act != visit.SkipChildren {
			// First discoverer wins the parent link; duplicates in the
			// queue are expected and resolved on dequeue.
			for _, eid := range node.Edges {
				next := edges[eid].Destination
				if w.parent[next] == core.Invalid {
					w.parent[next] = cur
				}
				w.queue = append(w.queue, next)
			}
		}

		if w.v.OnEndNodeProcess(w, node) == visit.Abort {
			w.res.Aborted = true
			return
		}

		w.nextComponentIfDrained()
	}
}

// nextComponentIfDrained, on an empty queue, scans node ids in ascending
// order for the first unprocessed node, closes the current component,
// opens the next one there, and seeds it as a new root.
func (w *walker) nextComponentIfDrained() {
	if len(w.queue) > 0 {
		return
	}
	for id := core.NodeID(0); int(id) < len(w.visited); id++ {
		if w.visited[id] {
			continue
		}
		w.v.OnEndComponentVisit(w)
		w.v.OnStartComponentVisit(w)
		w.parent[id] = core.Root
		w.queue = append(w.queue, id)
		w.res.Components++

		return
	}
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
	path, err := w.res.PathTo(id)
	if err != nil {
		return nil
	}

	return path
}
