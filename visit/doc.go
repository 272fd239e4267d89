// Package visit defines the callback protocol between the traversal
// engines (bfs, dfs) and user-supplied visitors.
//
// A Visitor observes a traversal through a fixed hook set and steers it
// through the NodeAction it returns: Continue proceeds normally, Abort
// terminates the whole traversal across all components, and SkipChildren
// processes the current node but does not descend into its neighbors.
//
// Every hook receives a Walk: a read-only view of the in-progress run
// exposing parent links, visited flags, and path reconstruction. Run state
// is owned by the engine and scoped to a single call; nothing leaks across
// runs. A Visitor must never mutate node or edge membership mid-walk.
//
// Concrete visitors embed Base and override only the hooks they care
// about; Base answers Continue everywhere and leaves the start node
// unset (traversal then starts at node 0).
//
// A Visitor instance carries per-run mutable state (path flags, recorded
// orders) and must not be shared across concurrent traversals.
package visit
