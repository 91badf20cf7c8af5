package overlayop

import (
	"math"
	"testing"

	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/geomgraph"
)

func square(x0, y0, x1, y1 float64) geom.Polygon {
	return geom.Polygon{Shell: geom.LinearRing{Coords: []geom.Coordinate{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}}}
}

func polygonArea(p geom.Polygon) float64 { return p.Area() }

func TestUnionOverlappingSquares(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	a := square(0, 0, 2, 2)
	b := square(1, 1, 3, 3)

	result, err := New(a, b, geomgraph.Union, f).GetResultGeometry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	poly, ok := result.(geom.Polygon)
	if !ok {
		t.Fatalf("expected a single Polygon, have %T", result)
	}
	if got := polygonArea(poly); math.Abs(got-7) > 1e-9 {
		t.Errorf("expected area 7, have %v", got)
	}
	if got := len(poly.Shell.Coords) - 1; got != 8 {
		t.Errorf("expected 8 distinct shell vertices, have %d", got)
	}
}

func TestLineIntersectionAtCrossingPoint(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	l0 := geom.LineString{Coords: []geom.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 2}}}
	l1 := geom.LineString{Coords: []geom.Coordinate{{X: 0, Y: 2}, {X: 2, Y: 0}}}

	result, err := New(l0, l1, geomgraph.Intersection, f).GetResultGeometry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pt, ok := result.(geom.Point)
	if !ok {
		t.Fatalf("expected a Point, have %T", result)
	}
	want := geom.Coordinate{X: 1, Y: 1}
	if !pt.Coordinate.Equals2D(want) {
		t.Errorf("expected intersection at (1,1), have (%v,%v)", pt.X, pt.Y)
	}
}

func TestSymDifferenceNestedSquaresProducesHole(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	outer := square(0, 0, 4, 4)
	inner := square(1, 1, 3, 3)

	result, err := New(outer, inner, geomgraph.SymDifference, f).GetResultGeometry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	poly, ok := result.(geom.Polygon)
	if !ok {
		t.Fatalf("expected a single Polygon with a hole, have %T", result)
	}
	if len(poly.Holes) != 1 {
		t.Fatalf("expected exactly one hole, have %d", len(poly.Holes))
	}
	wantArea := 16.0 - 4.0
	if got := polygonArea(poly); math.Abs(got-wantArea) > 1e-9 {
		t.Errorf("expected area %v, have %v", wantArea, got)
	}
}

func TestOverlayOpIsOneShot(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	op := New(square(0, 0, 1, 1), square(2, 2, 3, 3), geomgraph.Union, f)
	if _, err := op.GetResultGeometry(); err != nil {
		t.Fatalf("unexpected error on first call: %v", err)
	}
	if _, err := op.GetResultGeometry(); err == nil {
		t.Errorf("expected an error calling GetResultGeometry a second time")
	}
}
