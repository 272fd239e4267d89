// Package core defines the central Graph, Node, and Edge types together
// with the two interchangeable storage backends: an adjacency list and a
// dense row-major adjacency matrix.
//
// Nodes are identified by dense integer ids assigned at creation, starting
// at zero and never reused. Edges reference their endpoints by NodeID, and
// nodes reference their outgoing edges by EdgeID, so no pointer ever
// dangles across a resize of the underlying collections.
//
// The active backends are selected by a StorageKind bitmask; both may be
// kept in sync simultaneously, which lets callers cross-validate one
// representation against the other. Adding an edge with no backend
// selected is a precondition violation and returns ErrNoStorage.
//
// An undirected AddEdge materializes two reciprocal directed Edge records
// (source→destination and destination→source), so list traversal never
// needs to branch on directionality.
//
// Traversal state (visited flags, parent links) is deliberately NOT part
// of this package: it is run-scoped and owned by the bfs and dfs packages,
// so concurrent read-only traversals over an otherwise immutable Graph
// remain safe.
//
// Errors:
//
//	ErrNoStorage     - AddEdge called with no storage backend selected.
//	ErrNodeNotFound  - an operation referenced a node id out of range.
//	ErrEdgeNotFound  - an operation referenced an edge id out of range.
package core
