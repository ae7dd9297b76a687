package main

import "math"

// ShortestPaths holds the result of a single-source Dijkstra run. Distances
// to unreachable nodes stay +Inf internally and are never exposed as
// numbers; callers go through DistanceTo and PathTo.
type ShortestPaths struct {
	source int
	dist   []float64
	parent []int
}

// SolveShortestPaths runs Dijkstra's algorithm from the source node over
// the whole graph. The dense form scans linearly for the minimum unvisited
// node each round, O(V²) total. At this scale (V ≤ 802) that beats priority
// queue bookkeeping, and relaxation keeps the minimum over parallel edges
// automatically.
func SolveShortestPaths(g *Graph, source int) *ShortestPaths {
	n := len(g.Nodes)
	dist := make([]float64, n)
	parent := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		parent[i] = -1
	}
	dist[source] = 0

	for round := 1; round < n; round++ {
		current := -1
		best := math.Inf(1)
		for j := 0; j < n; j++ {
			if !visited[j] && dist[j] < best {
				current, best = j, dist[j]
			}
		}
		if current == -1 {
			// Everything still unvisited is unreachable.
			break
		}
		visited[current] = true

		for _, e := range g.Edges[current] {
			if visited[e.To] {
				continue
			}
			if d := best + e.Cost; d < dist[e.To] {
				dist[e.To] = d
				parent[e.To] = current
			}
		}
	}

	return &ShortestPaths{source: source, dist: dist, parent: parent}
}

// DistanceTo returns the shortest distance from the source to the node.
// The second result is false when the node is unreachable.
func (sp *ShortestPaths) DistanceTo(node int) (float64, bool) {
	d := sp.dist[node]
	if math.IsInf(d, 1) {
		return 0, false
	}
	return d, true
}

// PathTo reconstructs the node id sequence from the source to the node,
// inclusive. It returns nil when the node is unreachable.
func (sp *ShortestPaths) PathTo(node int) []int {
	if node != sp.source && sp.parent[node] == -1 {
		return nil
	}
	var path []int
	for v := node; v != -1; v = sp.parent[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
