package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/visigraph/visigraph/bfs"
	"github.com/visigraph/visigraph/core"
	"github.com/visigraph/visigraph/visit"
)

// path builds the directed chain 0→1→…→n-1.
func path(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(0)
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(core.NodeID(i), core.NodeID(i+1), 1, true)
	}

	return g
}

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

func TestRun_NilGraph(t *testing.T) {
	if _, err := bfs.Run(nil, nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Fatalf("want ErrGraphNil, got %v", err)
	}
}

func TestRun_SourceOutOfRange(t *testing.T) {
	g := path(2)
	_, err := bfs.Run(g, visit.NewPrinterFrom(nil, 7))
	if !errors.Is(err, bfs.ErrSourceNotFound) {
		t.Fatalf("want ErrSourceNotFound, got %v", err)
	}
}

func TestRun_EmptyGraph(t *testing.T) {
	res, err := bfs.Run(core.NewGraph(), &visit.Recorder{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Order) != 0 || res.Components != 0 || res.Aborted {
		t.Fatalf("empty graph must be a no-op, got %+v", res)
	}
}

func TestRun_ChainOrderAndParents(t *testing.T) {
	g := path(3)
	rec := &visit.Recorder{}
	res, err := bfs.Run(g, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []core.NodeID{0, 1, 2}
	if !reflect.DeepEqual(res.Order, wantOrder) {
		t.Errorf("Order = %v; want %v", res.Order, wantOrder)
	}
	wantParent := []core.NodeID{core.Root, 0, 1}
	if !reflect.DeepEqual(res.Parent, wantParent) {
		t.Errorf("Parent = %v; want %v", res.Parent, wantParent)
	}
	if !reflect.DeepEqual(rec.Processed, wantOrder) {
		t.Errorf("Processed = %v; want %v", rec.Processed, wantOrder)
	}
	// Each node fires begin/process/end exactly once on a simple chain.
	if !reflect.DeepEqual(rec.Begun, wantOrder) || !reflect.DeepEqual(rec.Ended, wantOrder) {
		t.Errorf("hook sequences diverged: begun %v ended %v", rec.Begun, rec.Ended)
	}
	if res.Components != 1 {
		t.Errorf("Components = %d; want 1", res.Components)
	}
}

func TestRun_RingShortestPathTree(t *testing.T) {
	g := ring(4)
	rec := &visit.Recorder{}
	res, err := bfs.Run(g, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 0 discovers 1 and 3 directly; 2 is one more hop away.
	wantOrder := []core.NodeID{0, 1, 3, 2}
	if !reflect.DeepEqual(res.Order, wantOrder) {
		t.Errorf("Order = %v; want %v", res.Order, wantOrder)
	}
	if res.Parent[1] != 0 || res.Parent[3] != 0 {
		t.Errorf("direct neighbours must hang off the root: %v", res.Parent)
	}
	if res.Parent[2] != 1 {
		t.Errorf("Parent[2] = %d; want 1 (first discoverer)", res.Parent[2])
	}

	p, err := res.PathTo(2)
	if err != nil {
		t.Fatalf("PathTo(2): %v", err)
	}
	if want := []core.NodeID{0, 1, 2}; !reflect.DeepEqual(p, want) {
		t.Errorf("PathTo(2) = %v; want %v", p, want)
	}

	// Duplicate queue entries surface as revisits, never as reprocessing.
	if len(rec.Revisited) == 0 {
		t.Error("expected revisits on a cycle")
	}
	if len(rec.Processed) != 4 {
		t.Errorf("each node must be processed once, got %v", rec.Processed)
	}
}

func TestRun_Components(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddNode(0)
	}
	g.AddEdge(0, 1, 1, false)
	// node 2 is isolated

	rec := &visit.Recorder{}
	res, err := bfs.Run(g, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Components != 2 {
		t.Errorf("Components = %d; want 2", res.Components)
	}
	if rec.ComponentStarts != 2 || rec.ComponentEnds != 2 {
		t.Errorf("component brackets must pair up: %d starts, %d ends",
			rec.ComponentStarts, rec.ComponentEnds)
	}
	if res.Parent[2] != core.Root {
		t.Errorf("Parent[2] = %d; want Root", res.Parent[2])
	}
	if want := []core.NodeID{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

func TestRun_AbortTruncates(t *testing.T) {
	g := path(3)
	rec := &visit.Recorder{ActionAt: map[core.NodeID]visit.NodeAction{1: visit.Abort}}
	res, err := bfs.Run(g, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Aborted {
		t.Error("Aborted flag not set")
	}
	if want := []core.NodeID{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Visited[2] {
		t.Error("node 2 must stay unvisited after Abort")
	}
	// The run is still bracketed after an Abort.
	if rec.ComponentStarts != rec.ComponentEnds {
		t.Errorf("unbalanced component brackets: %d/%d",
			rec.ComponentStarts, rec.ComponentEnds)
	}
}

func TestRun_SkipChildren(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddNode(0)
	}
	g.AddEdge(0, 1, 1, true)
	g.AddEdge(0, 2, 1, true)

	rec := &visit.Recorder{ActionAt: map[core.NodeID]visit.NodeAction{0: visit.SkipChildren}}
	res, err := bfs.Run(g, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 1 and 2 are never enqueued via 0; they surface as their own
	// components through the ascending rescan.
	if want := []core.NodeID{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Components != 3 {
		t.Errorf("Components = %d; want 3", res.Components)
	}
	if res.Parent[1] != core.Root || res.Parent[2] != core.Root {
		t.Errorf("skipped children must become roots: %v", res.Parent)
	}
	// SkipChildren only suppresses enqueueing; the end hook still fires.
	if want := []core.NodeID{0, 1, 2}; !reflect.DeepEqual(rec.Ended, want) {
		t.Errorf("Ended = %v; want %v", rec.Ended, want)
	}
}

func TestRun_CustomSource(t *testing.T) {
	g := path(3)
	rec := &visit.Recorder{Start: 1}
	res, err := bfs.Run(g, rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 0 is unreachable from 1 on a directed chain and opens component two.
	if want := []core.NodeID{1, 2, 0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Components != 2 {
		t.Errorf("Components = %d; want 2", res.Components)
	}
	if res.Parent[1] != core.Root || res.Parent[0] != core.Root {
		t.Errorf("Parent = %v; want roots at 1 and 0", res.Parent)
	}
}

func TestResult_PathToUndiscovered(t *testing.T) {
	g := path(2)
	res, err := bfs.Run(g, &visit.Recorder{ActionAt: map[core.NodeID]visit.NodeAction{0: visit.Abort}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := res.PathTo(1); !errors.Is(err, bfs.ErrNoPath) {
		t.Fatalf("want ErrNoPath, got %v", err)
	}
	if _, err := res.PathTo(-3); !errors.Is(err, bfs.ErrNoPath) {
		t.Fatalf("want ErrNoPath for out-of-range id, got %v", err)
	}
}

func BenchmarkRun_Ring(b *testing.B) {
	g := ring(1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Run(g, nil); err != nil {
			b.Fatal(err)
		}
	}
}
