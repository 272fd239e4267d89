// Package builder: the single-threaded randomized topology constructor.
//
// Draw order is fixed and documented so a seeded run is reproducible:
// one weight draw per node (id ascending), then per ordered pair (i,j)
// one chance draw, plus one weight draw for each pair that became an
// edge, plus the connectivity draws after each node's pass.
package builder

import (
	"fmt"

	"github.com/visigraph/visigraph/core"
)

// Random returns a Constructor that samples a graph of the given size:
// every ordered pair (i,j) becomes an edge with the flag-derived chance,
// node and edge weights are uniform in [0, weightScale). Self-loops are
// skipped unless AllowCycles is set; with Connected, a node ending its
// pass with no outgoing edge gets one forced random edge.
func Random(size int, flags Flags, weightScale float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		// 1) Validate parameters early; no side effects on invalid input.
		if size < minNodes {
			return fmt.Errorf("Random: size=%d < min=%d: %w", size, minNodes, ErrTooFewNodes)
		}
		if weightScale < 0 {
			return fmt.Errorf("Random: weightScale=%g: %w", weightScale, ErrBadWeightScale)
		}
		if cfg.timer != nil {
			cfg.timer.Start(cfg.timerSlot, "builder.Random")
			defer cfg.timer.Stop(cfg.timerSlot)
		}

		rng := cfg.resolveRNG(flags)
		chance := flags.edgeChance(size)
		directed := flags.Has(Directed)
		cyclic := flags.Has(AllowCycles)

		// 2) All nodes first so every destination id is valid, weights
		// drawn in id order.
		base := g.NodeCount()
		for i := 0; i < size; i++ {
			g.AddNode(rng.Float64() * weightScale)
		}

		// outDegree mirrors each node's forced-connectivity eligibility
		// independently of which storage backends are active.
		outDegree := make([]int, size)
		addEdge := func(src, dst int, w float64) error {
			if _, err := g.AddEdge(core.NodeID(base+src), core.NodeID(base+dst), w, directed); err != nil {
				return fmt.Errorf("Random: AddEdge(%d→%d): %w", src, dst, err)
			}
			outDegree[src]++
			if !directed {
				outDegree[dst]++
			}

			return nil
		}

		// 3) Bernoulli trial per ordered pair, i asc then j asc.
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				if rng.Float64() >= chance {
					continue
				}
				if i == j && !cyclic {
					continue
				}
				if err := addEdge(i, j, rng.Float64()*weightScale); err != nil {
					return err
				}
			}

			// 4) Connectivity: retries are bounded; when the only
			// candidate left is the node itself, the self-edge wins.
			if flags.Has(Connected) && outDegree[i] == 0 {
				dst := rng.Intn(size)
				for attempt := 0; !cyclic && dst == i && attempt < maxConnectAttempts; attempt++ {
					dst = rng.Intn(size)
				}
				if err := addEdge(i, dst, rng.Float64()*weightScale); err != nil {
					return err
				}
			}
		}

		cfg.log.Debug("random graph generated",
			"size", size,
			"edges", g.EdgeCount(),
			"chance", chance,
			"directed", directed,
			"connected", flags.Has(Connected))

		return nil
	}
}
