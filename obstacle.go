package main

import (
	"errors"
	"fmt"
)

// Input contract limits, enforced at the trust boundary by the loaders.
const (
	MaxObstacles = 200
	CoordLimit   = 10000
)

// Obstacle is a convex quadrilateral barrier. Corners are stored in
// counter-clockwise order; the solver relies on this orientation and does
// not re-check it.
type Obstacle [4]Point

// Edge returns the boundary edge from corner k to the next corner.
func (o *Obstacle) Edge(k int) (Point, Point) {
	return o[k], o[(k+1)%4]
}

// OnBoundary reports whether p lies on one of the four boundary edges.
func (o *Obstacle) OnBoundary(p Point) bool {
	for k := 0; k < 4; k++ {
		a, b := o.Edge(k)
		if onSegment(p, a, b) {
			return true
		}
	}
	return false
}

// ContainsStrict2x reports whether the doubled point p2 (both coordinates
// pre-multiplied by two) lies strictly inside the obstacle. Working on
// doubled coordinates keeps segment midpoints integral, so the test stays
// exact.
func (o *Obstacle) ContainsStrict2x(p2 Point) bool {
	for k := 0; k < 4; k++ {
		a, b := o.Edge(k)
		if b.Sub(a).Cross(p2.Sub(a.Scale(2))) <= 0 {
			return false
		}
	}
	return true
}

// ContainsStrict reports whether p lies strictly inside the obstacle.
// Boundary points do not count.
func (o *Obstacle) ContainsStrict(p Point) bool {
	return o.ContainsStrict2x(p.Scale(2))
}

// BoundingBox returns the axis-aligned bounds of the obstacle.
func (o *Obstacle) BoundingBox() (min, max Point) {
	min, max = o[0], o[0]
	for _, c := range o[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max
}

// Validate checks coordinate bounds and strict counter-clockwise
// convexity. A quadrilateral with a collinear or reflex corner is
// rejected.
func (o *Obstacle) Validate() error {
	for k, c := range o {
		if !inCoordRange(c) {
			return fmt.Errorf("corner %d (%d, %d) outside ±%d", k, c.X, c.Y, CoordLimit)
		}
	}
	for k := 0; k < 4; k++ {
		if orientation(o[k], o[(k+1)%4], o[(k+2)%4]) <= 0 {
			return errors.New("corners must form a strictly convex counter-clockwise quadrilateral")
		}
	}
	return nil
}

func inCoordRange(p Point) bool {
	return p.X >= -CoordLimit && p.X <= CoordLimit &&
		p.Y >= -CoordLimit && p.Y <= CoordLimit
}
