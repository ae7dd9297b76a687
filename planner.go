package main

import "strconv"

// Solve computes the length of the shortest obstacle-avoiding path for a
// scene. The second result is false when the destination cannot be reached.
func Solve(scene *Scene) (float64, bool) {
	graph := BuildVisibilityGraph(scene)
	sp := SolveShortestPaths(graph, SourceID)
	return sp.DistanceTo(TargetID)
}

// SolveWithPath additionally returns the waypoints of one shortest path,
// from the start point to the end point inclusive.
func SolveWithPath(scene *Scene) (float64, []Point, bool) {
	graph := BuildVisibilityGraph(scene)
	sp := SolveShortestPaths(graph, SourceID)

	distance, ok := sp.DistanceTo(TargetID)
	if !ok {
		return 0, nil, false
	}

	ids := sp.PathTo(TargetID)
	waypoints := make([]Point, len(ids))
	for i, id := range ids {
		waypoints[i] = graph.Nodes[id]
	}
	return distance, waypoints, true
}

// FormatDistance renders a distance in fixed-point form with enough
// fractional digits for a downstream tolerance of 1e-6.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', 15, 64)
}
