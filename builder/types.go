// Package builder: generation flags and file-scope constants.
package builder

// Flags is the bitmask steering randomized generation.
type Flags uint8

const (
	// Connected forces one outgoing edge onto any node that finished its
	// sampling pass with none.
	Connected Flags = 1 << iota

	// Directed makes every generated edge one-way.
	Directed

	// Sparse caps the expected fan-out at maxSparseConnections instead of
	// sampling at the dense edge chance.
	Sparse

	// Consistent seeds the generator with a fixed constant so identical
	// parameters reproduce the identical graph.
	Consistent

	// AllowCycles permits self-loop edges.
	AllowCycles
)

// Has reports whether every bit of f is set in fs.
func (fs Flags) Has(f Flags) bool { return fs&f == f }

const (
	// maxSparseConnections is the expected fan-out of a Sparse graph;
	// edge chance becomes maxSparseConnections/size.
	maxSparseConnections = 10

	// denseEdgeChance is the per-pair edge probability without Sparse.
	denseEdgeChance = 0.8

	// consistentSeed is the fixed seed used by the Consistent flag.
	consistentSeed = 1234

	// maxConnectAttempts bounds the connectivity retry loop before it
	// falls back to allowing the self-edge.
	maxConnectAttempts = 32

	// minNodes is the smallest valid generation size.
	minNodes = 1
)

// edgeChance derives the per-pair probability for size nodes.
func (fs Flags) edgeChance(size int) float64 {
	if fs.Has(Sparse) {
		c := float64(maxSparseConnections) / float64(size)
		if c > 1 {
			c = 1
		}

		return c
	}

	return denseEdgeChance
}
