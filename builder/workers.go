// Package builder: the worker-pool randomized topology constructor.
//
// Each worker owns a contiguous node range and a private RNG seeded from
// one master draw, and writes candidate edges only into its own range's
// buffers, so sampling is race-free by construction. The pool is joined
// before any buffer is read, and a single merge pass on the calling
// goroutine appends the sampled edges into shared storage. No worker is
// ever waited on before it was started.
package builder

import (
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/visigraph/visigraph/core"
)

// edgeDraft is one sampled candidate edge, held in a worker-local buffer
// until the merge phase.
type edgeDraft struct {
	dst    int
	weight float64
}

// Workers returns a Constructor sampling the same topology family as
// Random with a pool of cfg.workers goroutines. Every node draws up to
// edgeChance·size candidate destinations; duplicates are discarded, and
// self-loops are discarded unless AllowCycles is set. The merge phase
// applies the Connected flag the same way Random does.
//
// For a fixed seed, worker count, and parameters the result is
// reproducible; changing the worker count changes the range partition and
// therefore the graph.
func Workers(size int, flags Flags, weightScale float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		// 1) Validate parameters early.
		if size < minNodes {
			return fmt.Errorf("Workers: size=%d < min=%d: %w", size, minNodes, ErrTooFewNodes)
		}
		if weightScale < 0 {
			return fmt.Errorf("Workers: weightScale=%g: %w", weightScale, ErrBadWeightScale)
		}
		if cfg.timer != nil {
			cfg.timer.Start(cfg.timerSlot, "builder.Workers")
			defer cfg.timer.Stop(cfg.timerSlot)
		}

		master := cfg.resolveRNG(flags)
		chance := flags.edgeChance(size)
		directed := flags.Has(Directed)
		cyclic := flags.Has(AllowCycles)
		connections := int(chance * float64(size))
		if connections < 1 {
			connections = 1
		}

		workers := cfg.workers
		if workers > size {
			workers = size
		}

		// 2) Nodes and per-worker seeds come from the master RNG on the
		// calling goroutine; workers never touch shared generator state.
		base := g.NodeCount()
		for i := 0; i < size; i++ {
			g.AddNode(master.Float64() * weightScale)
		}
		seeds := make([]int64, workers)
		for w := range seeds {
			seeds[w] = master.Int63()
		}

		// 3) Sampling phase: one contiguous node range per worker, each
		// writing only its own slots of drafts.
		drafts := make([][]edgeDraft, size)
		eg, ctx := errgroup.WithContext(cfg.ctx)
		for w := 0; w < workers; w++ {
			lo := w * size / workers
			hi := (w + 1) * size / workers
			rng := rand.New(rand.NewSource(seeds[w]))
			eg.Go(func() error {
				for i := lo; i < hi; i++ {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
					drafts[i] = sampleNode(rng, i, size, connections, cyclic, weightScale)
				}

				return nil
			})
		}
		// Join every started worker before any buffer is read.
		if err := eg.Wait(); err != nil {
			return fmt.Errorf("Workers: sampling: %w", err)
		}

		// 4) Merge phase, single goroutine: append each node's drafts
		// into shared storage in id order.
		outDegree := make([]int, size)
		addEdge := func(src, dst int, weight float64) error {
			if _, err := g.AddEdge(core.NodeID(base+src), core.NodeID(base+dst), weight, directed); err != nil {
				return fmt.Errorf("Workers: AddEdge(%d→%d): %w", src, dst, err)
			}
			outDegree[src]++
			if !directed {
				outDegree[dst]++
			}

			return nil
		}
		for i := 0; i < size; i++ {
			for _, d := range drafts[i] {
				if err := addEdge(i, d.dst, d.weight); err != nil {
					return err
				}
			}
		}

		// 5) Connectivity pass, after the merge so reciprocal edges from
		// other nodes' drafts already count.
		if flags.Has(Connected) {
			for i := 0; i < size; i++ {
				if outDegree[i] > 0 {
					continue
				}
				dst := master.Intn(size)
				for attempt := 0; !cyclic && dst == i && attempt < maxConnectAttempts; attempt++ {
					dst = master.Intn(size)
				}
				if err := addEdge(i, dst, master.Float64()*weightScale); err != nil {
					return err
				}
			}
		}

		cfg.log.Debug("worker-pool graph generated",
			"size", size,
			"edges", g.EdgeCount(),
			"workers", workers,
			"connections", connections)

		return nil
	}
}

// sampleNode draws up to connections candidate destinations for node id
// from rng, discarding duplicates and, unless cyclic, self-loops.
func sampleNode(rng *rand.Rand, id, size, connections int, cyclic bool, weightScale float64) []edgeDraft {
	seen := make(map[int]struct{}, connections)
	out := make([]edgeDraft, 0, connections)
	for k := 0; k < connections; k++ {
		dst := rng.Intn(size)
		if dst == id && !cyclic {
			continue
		}
		if _, dup := seen[dst]; dup {
			continue
		}
		seen[dst] = struct{}{}
		out = append(out, edgeDraft{dst: dst, weight: rng.Float64() * weightScale})
	}

	return out
}
