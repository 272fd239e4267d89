// Package core: the dense adjacency-matrix backend.
//
// The buffer is a single row-major slice rather than a slice of rows, so a
// full scan walks contiguous memory. Its size is always exactly n² for the
// current node count n; the write path reallocates on drift, remapping the
// surviving cells to the new row stride. Cells are indexed by node ids
// directly: matrix[source*n + destination].
package core

// matrixIndex flattens (row, col) using the current node count as stride.
func (g *Graph) matrixIndex(row, col NodeID) int {
	return int(row)*len(g.nodes) + int(col)
}

// ensureMatrix reallocates the buffer when its size no longer matches
// NodeCount()². Cells of the old n×n grid that still address valid ids are
// carried over at the new stride.
func (g *Graph) ensureMatrix() {
	n := len(g.nodes)
	want := n * n
	if len(g.matrix) == want {
		return
	}

	old := g.matrix
	oldN := 0
	if len(old) > 0 {
		// The previous buffer was also exactly square by invariant.
		for oldN*oldN < len(old) {
			oldN++
		}
	}

	g.matrix = make([]float64, want)
	limit := oldN
	if n < limit {
		limit = n
	}
	for r := 0; r < limit; r++ {
		copy(g.matrix[r*n:r*n+limit], old[r*oldN:r*oldN+limit])
	}
}

// addMatrixEdge writes the weight at [source][destination], and mirrors it
// at [destination][source] for undirected edges.
func (g *Graph) addMatrixEdge(source, destination NodeID, weight float64, directed bool) {
	g.ensureMatrix()
	g.matrix[g.matrixIndex(source, destination)] = weight
	if !directed {
		g.matrix[g.matrixIndex(destination, source)] = weight
	}
}

// MatrixWeight returns the matrix cell for source→destination.
// A zero value means "no edge recorded". Returns ErrNodeNotFound for ids
// out of range; a Graph without matrix storage reports all cells as zero.
func (g *Graph) MatrixWeight(source, destination NodeID) (float64, error) {
	if !g.hasNode(source) || !g.hasNode(destination) {
		return 0, ErrNodeNotFound
	}
	if len(g.matrix) != len(g.nodes)*len(g.nodes) {
		return 0, nil
	}

	return g.matrix[g.matrixIndex(source, destination)], nil
}

// Matrix returns the live row-major buffer, or nil if matrix storage was
// never written. The slice must be treated as read-only.
func (g *Graph) Matrix() []float64 { return g.matrix }
