package main

import (
	"math"
	"testing"
)

// handGraph builds a small fixed graph:
//
//	0 --1.0-- 1 --2.0-- 2      3 (isolated)
//	 \_______4.0_______/
func handGraph() *Graph {
	g := &Graph{
		Nodes: map[int]Point{0: {0, 0}, 1: {1, 0}, 2: {3, 0}, 3: {9, 9}},
		Edges: make(map[int][]Edge),
	}
	g.addEdge(0, 1, 1.0)
	g.addEdge(1, 2, 2.0)
	g.addEdge(0, 2, 4.0)
	return g
}

func TestSolveShortestPathsRelaxation(t *testing.T) {
	sp := SolveShortestPaths(handGraph(), 0)

	d, ok := sp.DistanceTo(2)
	if !ok {
		t.Fatal("node 2 should be reachable")
	}
	if d != 3.0 {
		t.Errorf("distance to node 2 = %v, want 3 (via node 1)", d)
	}
	if d, ok := sp.DistanceTo(0); !ok || d != 0 {
		t.Errorf("distance to source = %v, %v; want 0, true", d, ok)
	}
}

func TestSolveShortestPathsUnreachable(t *testing.T) {
	sp := SolveShortestPaths(handGraph(), 0)

	if _, ok := sp.DistanceTo(3); ok {
		t.Error("isolated node must be reported unreachable, not as a number")
	}
	if path := sp.PathTo(3); path != nil {
		t.Errorf("path to isolated node should be nil, got %v", path)
	}
}

func TestPathTo(t *testing.T) {
	sp := SolveShortestPaths(handGraph(), 0)

	path := sp.PathTo(2)
	want := []int{0, 1, 2}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}

	self := sp.PathTo(0)
	if len(self) != 1 || self[0] != 0 {
		t.Errorf("path to source = %v, want [0]", self)
	}
}

func TestParallelEdgesKeepMinimum(t *testing.T) {
	g := &Graph{
		Nodes: map[int]Point{0: {0, 0}, 1: {1, 0}},
		Edges: make(map[int][]Edge),
	}
	g.addEdge(0, 1, 5.0)
	g.addEdge(0, 1, 2.0)

	sp := SolveShortestPaths(g, 0)
	if d, ok := sp.DistanceTo(1); !ok || d != 2.0 {
		t.Errorf("distance = %v, %v; relaxation should keep the cheaper parallel edge", d, ok)
	}
}

func TestSolveShortestPathsInfinityNeverLeaks(t *testing.T) {
	g := &Graph{
		Nodes: map[int]Point{0: {0, 0}, 1: {1, 0}},
		Edges: make(map[int][]Edge),
	}

	sp := SolveShortestPaths(g, 0)
	d, ok := sp.DistanceTo(1)
	if ok {
		t.Fatal("disconnected node reported reachable")
	}
	if math.IsInf(d, 1) {
		t.Error("unreachable distance must not surface as infinity")
	}
}
