package main

import (
	"github.com/dhconnelly/rtreego"
)

// ObstacleEntry wraps an obstacle for R-tree storage.
type ObstacleEntry struct {
	Obstacle *Obstacle
	BBox     rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *ObstacleEntry) Bounds() rtreego.Rect {
	return e.BBox
}

// SpatialIndex manages obstacle spatial queries
type SpatialIndex struct {
	tree *rtreego.Rtree
}

// Rects are padded so degenerate extents (a vertical or horizontal query
// segment has zero width or height) still produce valid R-tree entries.
const rectPadding = 0.5

// NewSpatialIndex creates a new spatial index over the obstacle set.
func NewSpatialIndex(obstacles []Obstacle) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for i := range obstacles {
		min, max := obstacles[i].BoundingBox()
		bbox, err := paddedRect(min, max)
		if err == nil {
			tree.Insert(&ObstacleEntry{Obstacle: &obstacles[i], BBox: bbox})
		}
	}

	return &SpatialIndex{tree: tree}
}

// QuerySegment returns the obstacles whose bounding boxes intersect the
// bounding box of the segment ab.
func (si *SpatialIndex) QuerySegment(a, b Point) []*Obstacle {
	lo := Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	hi := Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)}

	bbox, err := paddedRect(lo, hi)
	if err != nil {
		return nil
	}

	results := si.tree.SearchIntersect(bbox)
	obstacles := make([]*Obstacle, 0, len(results))

	for _, item := range results {
		entry := item.(*ObstacleEntry)
		obstacles = append(obstacles, entry.Obstacle)
	}

	return obstacles
}

func paddedRect(lo, hi Point) (rtreego.Rect, error) {
	return rtreego.NewRect(
		rtreego.Point{float64(lo.X) - rectPadding, float64(lo.Y) - rectPadding},
		[]float64{
			float64(hi.X-lo.X) + 2*rectPadding,
			float64(hi.Y-lo.Y) + 2*rectPadding,
		},
	)
}
