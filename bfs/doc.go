// Package bfs implements multi-component breadth-first traversal over a
// core.Graph, driving a visit.Visitor through the fixed hook protocol.
//
// The run starts at the visitor's Source (node 0 when unset), brackets the
// whole call with OnStartVisit/OnEndVisit, and each connected component
// with OnStartComponentVisit/OnEndComponentVisit. Whenever the queue
// drains, the engine scans node ids in ascending order for the first
// unprocessed node and opens the next component there, so every node is
// processed exactly once regardless of connectivity.
//
// Neighbors are enqueued unconditionally; a node reaching the queue
// through two different parents surfaces as OnNodeAlreadyVisited on its
// second dequeue. Parent links follow the first discoverer, which makes
// the per-run parent array a shortest-path tree on unweighted graphs;
// see Result.PathTo and the search package.
//
// Visited flags and parent links are owned by the run, allocated per call
// and exposed to hooks through visit.Walk; nothing leaks across runs, and
// concurrent runs over the same immutable Graph are independent.
//
// Cancellation is cooperative and synchronous: a hook returning
// visit.Abort terminates the whole traversal; there is no other
// suspension point.
//
// Complexity: O(V + E) time, O(V) space, plus hook overhead.
package bfs
