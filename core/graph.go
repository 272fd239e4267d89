// Package core: Graph mutation and query methods.
//
// AddNode appends into the dense id space; AddEdge fans out to every
// active backend. Accessors return pointers into the live collections, so
// callers must treat them as read-only during a traversal.
package core

import "fmt"

// AddNode appends a node with the next sequential id and the given weight.
// Returns the new node's id. Complexity: O(1) amortized.
func (g *Graph) AddNode(weight float64) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Weight: weight})

	return id
}

// AddNodeAt appends a node carrying 2D layout coordinates.
// The coordinates are opaque to every algorithm in this module.
func (g *Graph) AddNodeAt(weight, x, y float64) NodeID {
	id := g.AddNode(weight)
	g.nodes[id].X, g.nodes[id].Y = x, y

	return id
}

// AddEdge inserts an edge from source to destination into every active
// storage backend and returns the id of the (first) list record created.
//
// For list storage with directed=false, two reciprocal directed records
// are inserted and the returned id is the source→destination one.
// For matrix storage the weight is written at [source][destination], and
// mirrored at [destination][source] when undirected.
//
// Returns ErrNoStorage when no backend is selected, ErrNodeNotFound when
// either endpoint is out of range. Complexity: O(1) amortized.
func (g *Graph) AddEdge(source, destination NodeID, weight float64, directed bool) (EdgeID, error) {
	// 1) Precondition: a backend must be selected before any insertion.
	if g.storage == StorageNone {
		return 0, ErrNoStorage
	}
	// 2) Endpoint validation.
	if !g.hasNode(source) {
		return 0, fmt.Errorf("core: AddEdge source %d: %w", source, ErrNodeNotFound)
	}
	if !g.hasNode(destination) {
		return 0, fmt.Errorf("core: AddEdge destination %d: %w", destination, ErrNodeNotFound)
	}

	// 3) Fan out to every active backend.
	var id EdgeID
	if g.storage.Has(StorageList) {
		id = g.addListEdge(source, destination, weight, directed)
	}
	if g.storage.Has(StorageMatrix) {
		g.addMatrixEdge(source, destination, weight, directed)
	}

	return id, nil
}

// addListEdge appends the edge record(s) and wires the per-node
// edge-reference lists. Undirected edges become two reciprocal records.
func (g *Graph) addListEdge(source, destination NodeID, weight float64, directed bool) EdgeID {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{
		ID:          id,
		Source:      source,
		Destination: destination,
		Weight:      weight,
		Directed:    directed,
	})
	g.nodes[source].Edges = append(g.nodes[source].Edges, id)

	if !directed {
		mirror := EdgeID(len(g.edges))
		g.edges = append(g.edges, Edge{
			ID:          mirror,
			Source:      destination,
			Destination: source,
			Weight:      weight,
			Directed:    false,
		})
		g.nodes[destination].Edges = append(g.nodes[destination].Edges, mirror)
	}

	return id
}

// hasNode reports whether id lies in the dense valid range.
func (g *Graph) hasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns a pointer to the node with the given id,
// or ErrNodeNotFound when id is out of range.
func (g *Graph) Node(id NodeID) (*Node, error) {
	if !g.hasNode(id) {
		return nil, fmt.Errorf("core: Node(%d): %w", id, ErrNodeNotFound)
	}

	return &g.nodes[id], nil
}

// Edge returns a pointer to the edge record with the given id,
// or ErrEdgeNotFound when id is out of range.
func (g *Graph) Edge(id EdgeID) (*Edge, error) {
	if id < 0 || int(id) >= len(g.edges) {
		return nil, fmt.Errorf("core: Edge(%d): %w", id, ErrEdgeNotFound)
	}

	return &g.edges[id], nil
}

// OutEdges returns the edge records leaving node id, in insertion order.
// Complexity: O(deg(id)).
func (g *Graph) OutEdges(id NodeID) ([]*Edge, error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}
	out := make([]*Edge, 0, len(n.Edges))
	for _, eid := range n.Edges {
		out = append(out, &g.edges[eid])
	}

	return out, nil
}

// Nodes returns the live node collection, ordered by id.
// The slice must be treated as read-only.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns the live edge collection, ordered by id.
// The slice must be treated as read-only.
func (g *Graph) Edges() []Edge { return g.edges }

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edge records, counting each undirected
// edge as its two reciprocal records. O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Storage returns the active backend bitmask.
func (g *Graph) Storage() StorageKind { return g.storage }

// Clone returns a deep copy of the Graph: nodes, edge-reference lists,
// edge records, matrix buffer, and storage selection.
// Complexity: O(V + E + n²).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes:   make([]Node, len(g.nodes)),
		edges:   make([]Edge, len(g.edges)),
		storage: g.storage,
	}
	copy(c.nodes, g.nodes)
	copy(c.edges, g.edges)
	for i := range c.nodes {
		refs := make([]EdgeID, len(g.nodes[i].Edges))
		copy(refs, g.nodes[i].Edges)
		c.nodes[i].Edges = refs
	}
	if g.matrix != nil {
		c.matrix = make([]float64, len(g.matrix))
		copy(c.matrix, g.matrix)
	}

	return c
}
