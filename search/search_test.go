package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visigraph/visigraph/bfs"
	"github.com/visigraph/visigraph/core"
	"github.com/visigraph/visigraph/search"
)

// ring builds the undirected cycle 0-1-…-n-1-0.
func ring(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(0)
	}
	for i := 0; i < n; i++ {
		g.AddEdge(core.NodeID(i), core.NodeID((i+1)%n), 1, false)
	}

	return g
}

func TestShortestPath_Ring(t *testing.T) {
	g := ring(6)

	// Opposite corner of a 6-ring: both arcs are 3 hops, BFS commits to
	// the first-discovered one.
	p, err := search.ShortestPath(g, 0, 3)
	require.NoError(t, err)
	require.Len(t, p, 4)
	assert.Equal(t, core.NodeID(0), p[0])
	assert.Equal(t, core.NodeID(3), p[3])

	// Adjacent node: one hop, via the direct edge.
	p, err = search.ShortestPath(g, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 5}, p)
}

func TestShortestPath_SourceIsDestination(t *testing.T) {
	g := ring(3)
	p, err := search.ShortestPath(g, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1}, p)
}

func TestShortestPath_NoPath(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddNode(0)
	}
	g.AddEdge(0, 1, 1, false)
	g.AddEdge(2, 3, 1, false)

	_, err := search.ShortestPath(g, 0, 3)
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestShortestPath_DirectedOneWay(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(0)
	g.AddNode(0)
	g.AddEdge(0, 1, 1, true)

	p, err := search.ShortestPath(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1}, p)

	// The reverse direction has no edge.
	_, err = search.ShortestPath(g, 1, 0)
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestShortestPath_EndpointValidation(t *testing.T) {
	g := ring(3)
	_, err := search.ShortestPath(g, 9, 0)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = search.ShortestPath(g, 0, -4)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = search.ShortestPath(nil, 0, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestPathFinder_AbortsOnceDecided verifies the traversal stops instead of
// walking components that cannot change the answer.
func TestPathFinder_AbortsOnceDecided(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddNode(0)
	}
	g.AddEdge(0, 1, 1, true)
	// nodes 2 and 3 form unreachable clutter

	f := search.NewPathFinder(0, 1)
	res, err := bfs.Run(g, f)
	require.NoError(t, err)

	require.Equal(t, search.Found, f.State())
	assert.Equal(t, []core.NodeID{0, 1}, f.Path())
	assert.True(t, res.Aborted, "run must stop after the answer is known")
	assert.False(t, res.Visited[3])
}

func TestPathState_String(t *testing.T) {
	assert.Equal(t, "Uninitialized", search.Uninitialized.String())
	assert.Equal(t, "Found", search.Found.String())
	assert.Equal(t, "NoPath", search.NoPath.String())
}
