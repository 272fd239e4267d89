// Package builder constructs randomized graph topologies over core.Graph.
//
// The entry point is Build(storage, opts, constructors...): it creates a
// graph with the requested storage backends, resolves the functional
// options into a config, and applies each Constructor in order. Two
// constructors are provided:
//
//   - Random(size, flags, weightScale): single-threaded Bernoulli edge
//     sampling over every ordered node pair.
//   - Workers(size, flags, weightScale): the same topology family sampled
//     by a pool of workers, each drawing a candidate edge set for its own
//     node range from a private RNG, merged on one goroutine afterwards.
//
// Flags shape the topology: Sparse caps expected fan-out at a small
// constant, otherwise each pair is tried at the dense edge chance;
// Connected forces one outgoing edge onto any node that ended its pass
// with none; AllowCycles permits self-loops; Directed picks edge
// semantics; Consistent seeds the generator with a fixed constant so two
// generations with equal parameters produce identical graphs.
//
// Randomness is always an explicit *rand.Rand: supply one via WithRand or
// WithSeed, or let the constructor derive one from the Consistent flag.
// There is no process-wide generator and no hidden seeding.
package builder
