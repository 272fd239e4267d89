// Package dfs implements multi-component recursive depth-first traversal
// over a core.Graph, driving a visit.Visitor through the fixed hook
// protocol in either pre-order or post-order.
//
// The run starts at the visitor's Source (node 0 when unset); once that
// component is exhausted the driver scans node ids in ascending order and
// opens a fresh component at every node still unprocessed. Each component
// is bracketed by OnStartComponentVisit/OnEndComponentVisit, the whole
// call by OnStartVisit/OnEndVisit.
//
// OnNodeProcess fires before the children for PreOrder and after all
// children finished for PostOrder. Reaching an already-processed node
// through an edge surfaces as OnNodeAlreadyVisited: that is how a back
// or cross edge (a cycle) shows up. It is not an error.
//
// visit.SkipChildren from OnBeginNodeProcess or a pre-order OnNodeProcess
// prunes the node's entire subtree for this call; pruned descendants may
// still be visited later as roots of new components if nothing else
// reaches them. visit.Abort unwinds the recursion immediately, skipping
// remaining siblings and components.
//
// Visited flags and parent links are run-scoped, exposed to hooks through
// visit.Walk; component roots carry core.Root as their parent.
//
// Complexity: O(V + E) time, O(V) space for the recursion and state.
package dfs
