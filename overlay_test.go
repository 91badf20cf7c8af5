package overlay

import (
	"testing"

	"github.com/ctessum/overlay/geom"
)

func square(x0, y0, x1, y1 float64, f *geom.GeometryFactory) geom.Polygon {
	return geom.Polygon{Shell: geom.LinearRing{Coords: []geom.Coordinate{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}, Factory: f}, Factory: f}
}

func TestOverlayUnionOfOverlappingSquares(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	a := square(0, 0, 2, 2, f)
	b := square(1, 1, 3, 3, f)

	result, err := Overlay(a, b, Union, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(geom.Polygon); !ok {
		t.Fatalf("expected a single polygon, have %T", result)
	}
}

func TestOverlayIntersectionOfCrossingLines(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	l0 := geom.LineString{Coords: []geom.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 2}}, Factory: f}
	l1 := geom.LineString{Coords: []geom.Coordinate{{X: 0, Y: 2}, {X: 2, Y: 0}}, Factory: f}

	result, err := Overlay(l0, l1, Intersection, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pt, ok := result.(geom.Point)
	if !ok {
		t.Fatalf("expected a point, have %T", result)
	}
	if pt.X != 1 || pt.Y != 1 {
		t.Errorf("expected (1,1), have (%v,%v)", pt.X, pt.Y)
	}
}

func TestCascadedUnionFacade(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	polys := []geom.Polygon{square(0, 0, 1, 1, f), square(0.5, 0.5, 1.5, 1.5, f)}

	result, err := CascadedUnion(polys, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(geom.Polygon); !ok {
		t.Fatalf("expected a single polygon, have %T", result)
	}
}

func TestUnaryUnionFacade(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	a := square(0, 0, 2, 2, f)
	b := square(1, 1, 3, 3, f)

	result, err := UnaryUnion([]geom.Geom{a, b}, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(geom.Polygon); !ok {
		t.Fatalf("expected a single polygon, have %T", result)
	}
}
