package main

import "math"

// Point is a position on the integer grid, also used as a 2D vector.
// All predicates on points are exact; floating point enters only when
// measuring lengths.
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by the integer factor k.
func (p Point) Scale(k int64) Point {
	return Point{p.X * k, p.Y * k}
}

// Cross is the z component of the cross product p × q, twice the signed
// area of the triangle (origin, p, q). Its sign gives the turn direction.
func (p Point) Cross(q Point) int64 {
	return p.X*q.Y - p.Y*q.X
}

// Dot is the inner product of p and q as vectors.
func (p Point) Dot(q Point) int64 {
	return p.X*q.X + p.Y*q.Y
}

// Length is the Euclidean norm of p as a vector.
func (p Point) Length() float64 {
	return math.Sqrt(float64(p.X*p.X + p.Y*p.Y))
}

// Distance calculates the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Length()
}

// sign returns -1, 0 or +1. Coordinates are integers, so collinearity is
// decided exactly, with no epsilon.
func sign(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// orientation of the turn a→b→c: positive for a left turn, negative for a
// right turn, zero when the three points are collinear.
func orientation(a, b, c Point) int {
	return sign(b.Sub(a).Cross(c.Sub(a)))
}

// onSegment reports whether p lies on the closed segment ab, endpoints
// included.
func onSegment(p, a, b Point) bool {
	return a.Sub(p).Cross(b.Sub(p)) == 0 && a.Sub(p).Dot(b.Sub(p)) <= 0
}

// onSegmentInterior reports whether p lies strictly between a and b.
func onSegmentInterior(p, a, b Point) bool {
	return a.Sub(p).Cross(b.Sub(p)) == 0 && a.Sub(p).Dot(b.Sub(p)) < 0
}

// segmentsProperlyCross reports whether segments ab and cd intersect at a
// single point interior to both. Touching at an endpoint or overlapping
// along a common line does not count.
func segmentsProperlyCross(a, b, c, d Point) bool {
	return orientation(a, b, c)*orientation(a, b, d) < 0 &&
		orientation(c, d, a)*orientation(c, d, b) < 0
}
