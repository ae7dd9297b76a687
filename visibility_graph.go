package main

// Graph is a weighted undirected visibility graph for pathfinding. Nodes
// are the obstacle corners plus the two query endpoints.
type Graph struct {
	Nodes map[int]Point
	Edges map[int][]Edge
}

// Edge represents a connection between two nodes with a cost
type Edge struct {
	To   int     // Index of the destination node
	Cost float64 // Euclidean distance
}

// Reserved node ids for the two query endpoints. Obstacle corners occupy
// the remaining slots via CornerID, so a scene with n obstacles always has
// exactly 4n+2 nodes with ids 0..4n+1.
const (
	SourceID = 0
	TargetID = 1
)

// CornerID maps corner k of obstacle i to its node id. The mapping is
// stable and injective for 0 ≤ k < 4.
func CornerID(i, k int) int {
	return 4*i + k + 2
}

// NumNodes returns the node count for a scene with n obstacles.
func NumNodes(n int) int {
	return 4*n + 2
}

// BuildVisibilityGraph constructs the visibility graph for a scene: an
// edge connects two nodes iff the straight segment between them avoids
// every obstacle interior. Each unordered pair is tested once; corners of
// the same obstacle are connected only along the boundary, where adjacent
// corners are always candidates (still subject to the visibility test,
// since a different obstacle may overlap the edge).
func BuildVisibilityGraph(scene *Scene) *Graph {
	obstacles := scene.Obstacles
	tester := NewVisibilityTester(obstacles)

	graph := &Graph{
		Nodes: make(map[int]Point, NumNodes(len(obstacles))),
		Edges: make(map[int][]Edge),
	}
	graph.Nodes[SourceID] = scene.Start
	graph.Nodes[TargetID] = scene.End
	for i := range obstacles {
		for k := 0; k < 4; k++ {
			graph.Nodes[CornerID(i, k)] = obstacles[i][k]
		}
	}

	for i := range obstacles {
		for k := 0; k < 4; k++ {
			a := obstacles[i][k]
			id := CornerID(i, k)

			// Corners of later obstacles; j > i avoids duplicate pairs.
			for j := i + 1; j < len(obstacles); j++ {
				for l := 0; l < 4; l++ {
					b := obstacles[j][l]
					if tester.CanConnect(a, b) {
						graph.addEdge(id, CornerID(j, l), a.Distance(b))
					}
				}
			}

			if tester.CanConnect(a, scene.Start) {
				graph.addEdge(id, SourceID, a.Distance(scene.Start))
			}
			if tester.CanConnect(a, scene.End) {
				graph.addEdge(id, TargetID, a.Distance(scene.End))
			}

			b := obstacles[i][(k+1)%4]
			if tester.CanConnect(a, b) {
				graph.addEdge(id, CornerID(i, (k+1)%4), a.Distance(b))
			}
		}
	}

	if tester.CanConnect(scene.Start, scene.End) {
		graph.addEdge(SourceID, TargetID, scene.Start.Distance(scene.End))
	}

	return graph
}

// addEdge adds a bidirectional edge.
func (g *Graph) addEdge(a, b int, cost float64) {
	g.Edges[a] = append(g.Edges[a], Edge{To: b, Cost: cost})
	g.Edges[b] = append(g.Edges[b], Edge{To: a, Cost: cost})
}

// LineSegments returns the graph edges as point pairs for visualization,
// each undirected edge exactly once.
func (g *Graph) LineSegments() [][2]Point {
	lines := make([][2]Point, 0)
	for id, edges := range g.Edges {
		for _, e := range edges {
			if id < e.To {
				lines = append(lines, [2]Point{g.Nodes[id], g.Nodes[e.To]})
			}
		}
	}
	return lines
}
