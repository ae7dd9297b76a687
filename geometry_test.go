package main

import (
	"math"
	"testing"
)

func TestOrientation(t *testing.T) {
	a := Point{0, 0}
	b := Point{4, 0}

	if got := orientation(a, b, Point{2, 3}); got != 1 {
		t.Errorf("expected left turn (+1), got %d", got)
	}
	if got := orientation(a, b, Point{2, -3}); got != -1 {
		t.Errorf("expected right turn (-1), got %d", got)
	}
	if got := orientation(a, b, Point{9, 0}); got != 0 {
		t.Errorf("expected collinear (0), got %d", got)
	}
}

func TestOnSegment(t *testing.T) {
	a := Point{-2, -2}
	b := Point{4, 4}

	if !onSegment(Point{1, 1}, a, b) {
		t.Error("interior point should lie on segment")
	}
	if !onSegment(a, a, b) || !onSegment(b, a, b) {
		t.Error("endpoints should lie on closed segment")
	}
	if onSegment(Point{5, 5}, a, b) {
		t.Error("collinear point beyond endpoint should not lie on segment")
	}
	if onSegment(Point{1, 2}, a, b) {
		t.Error("off-line point should not lie on segment")
	}
}

func TestOnSegmentInterior(t *testing.T) {
	a := Point{0, 0}
	b := Point{4, 0}

	if !onSegmentInterior(Point{2, 0}, a, b) {
		t.Error("midpoint should be strictly interior")
	}
	if onSegmentInterior(a, a, b) || onSegmentInterior(b, a, b) {
		t.Error("endpoints are not strictly interior")
	}
}

func TestSegmentsProperlyCross(t *testing.T) {
	if !segmentsProperlyCross(Point{0, -1}, Point{0, 1}, Point{-1, 0}, Point{1, 0}) {
		t.Error("crossing segments should properly cross")
	}
	// Touching at an endpoint is not a proper crossing.
	if segmentsProperlyCross(Point{0, 0}, Point{0, 2}, Point{0, 0}, Point{2, 0}) {
		t.Error("segments sharing an endpoint do not properly cross")
	}
	// T-junction: one endpoint on the other segment's interior.
	if segmentsProperlyCross(Point{-1, 0}, Point{1, 0}, Point{0, 0}, Point{0, 2}) {
		t.Error("a T-junction is not a proper crossing")
	}
	// Collinear overlap.
	if segmentsProperlyCross(Point{0, 0}, Point{4, 0}, Point{2, 0}, Point{6, 0}) {
		t.Error("collinear overlapping segments do not properly cross")
	}
	if segmentsProperlyCross(Point{0, 0}, Point{1, 0}, Point{0, 5}, Point{1, 5}) {
		t.Error("disjoint segments do not cross")
	}
}

func TestDistance(t *testing.T) {
	got := Point{-5, 0}.Distance(Point{0, 2})
	want := math.Sqrt(29)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("distance = %v, want %v", got, want)
	}
	if d := (Point{3, 4}).Length(); d != 5 {
		t.Errorf("length = %v, want 5", d)
	}
}

func TestVectorArithmetic(t *testing.T) {
	p := Point{3, -2}
	q := Point{1, 5}

	if got := p.Add(q); got != (Point{4, 3}) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(q); got != (Point{2, -7}) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Scale(2); got != (Point{6, -4}) {
		t.Errorf("Scale = %v", got)
	}
	if got := p.Cross(q); got != 17 {
		t.Errorf("Cross = %d, want 17", got)
	}
	if got := p.Dot(q); got != -7 {
		t.Errorf("Dot = %d, want -7", got)
	}
}
