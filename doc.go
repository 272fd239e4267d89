// Package visigraph is a reusable in-memory graph container paired with
// visitor-driven traversal engines.
//
// What it gives you:
//
//   - Core primitives: dense-id nodes and index-based edges over two
//     interchangeable storage backends (adjacency list, dense matrix)
//   - Traversals: multi-component BFS and DFS (pre-/post-order) driving a
//     fixed visitor hook protocol with Continue/Abort/SkipChildren steering
//   - Shortest hops: BFS parent-tree path reconstruction
//   - Generation: randomized topologies, single-threaded or worker-pool
//   - Profiling: named-slot wall-clock timing with prometheus export
//
// Everything is organized under small top-level packages:
//
//	core/    - Graph, Node, Edge, storage backends
//	visit/   - Visitor protocol, NodeAction, stock visitors
//	bfs/     - breadth-first engine
//	dfs/     - depth-first engine (PreOrder/PostOrder)
//	search/  - shortest-hop path queries
//	builder/ - randomized graph generation
//	timing/  - named-slot profiling
//
// Quick example - print every node of a random connected graph in BFS
// order, one line per component:
//
//	g, err := builder.Build(core.StorageList, []builder.Option{builder.WithSeed(7)},
//		builder.Random(8, builder.Connected|builder.Sparse, 1.0))
//	if err != nil {
//		log.Fatal(err)
//	}
//	bfs.Run(g, visit.NewPrinter(os.Stdout))
//
// Graphs are append-only: nodes and edges are created during construction
// and never removed, and traversal state never lives on the graph itself,
// so any number of traversals may read one graph concurrently.
package visigraph
