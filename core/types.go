// Package core: type declarations for Node, Edge, Graph, the storage
// bitmask, parent sentinels, sentinel errors, and the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNoStorage indicates AddEdge was called while no storage backend
	// is selected on the Graph.
	ErrNoStorage = errors.New("core: no storage backend selected")

	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge id.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// NodeID is a dense index into a Graph's node collection.
// Valid ids lie in [0, NodeCount()); negative values are sentinels.
type NodeID int

// EdgeID is an index into a Graph's edge collection.
type EdgeID int

// Parent sentinels, both outside the valid id range.
const (
	// Root marks a node that started a connected component in a traversal run.
	Root NodeID = -1

	// Invalid marks a node not yet visited in the current traversal run.
	Invalid NodeID = -2
)

// StorageKind selects which backend(s) a Graph keeps in sync on every
// edge insertion. Values combine as a bitmask.
type StorageKind uint8

const (
	// StorageNone selects no backend; AddEdge fails with ErrNoStorage.
	StorageNone StorageKind = 0

	// StorageList keeps the adjacency-list backend (edge records plus
	// per-node edge-reference lists).
	StorageList StorageKind = 1 << iota

	// StorageMatrix keeps the dense adjacency-matrix backend.
	StorageMatrix
)

// Has reports whether every bit of k is set in s.
func (s StorageKind) Has(k StorageKind) bool { return s&k == k }

// Node is a vertex of the graph.
//
// ID is its stable index in the node collection, assigned at creation.
// Weight is an arbitrary numeric payload; X and Y are optional 2D layout
// coordinates, unused by traversal. Edges lists the ids of the node's
// outgoing edges in insertion order (list storage only).
type Node struct {
	ID     NodeID
	Weight float64
	X, Y   float64
	Edges  []EdgeID
}

// Edge is a directed connection record between two nodes.
//
// An undirected edge added through Graph.AddEdge exists as two reciprocal
// Edge records; Directed records which semantics the pair carries.
type Edge struct {
	ID          EdgeID
	Source      NodeID
	Destination NodeID
	Weight      float64
	Directed    bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithStorage selects the storage backend bitmask for the new Graph.
func WithStorage(kind StorageKind) GraphOption {
	return func(g *Graph) { g.storage = kind }
}

// Graph is the core in-memory graph container.
//
// It owns the node collection (insertion order = id order), the edge
// collection, and at most one dense matrix buffer of exactly n² cells.
// Nodes and edges are created during construction and never removed.
type Graph struct {
	nodes   []Node
	edges   []Edge
	matrix  []float64 // row-major, len == NodeCount()², lazily (re)allocated
	storage StorageKind
}

// NewGraph creates an empty Graph. With no options the adjacency-list
// backend is active; use WithStorage to change the backend set.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{storage: StorageList}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
