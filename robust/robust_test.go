package robust

import (
	"testing"

	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/geomgraph"
)

func square(x0, y0, x1, y1 float64) geom.Polygon {
	f := geom.NewGeometryFactory(nil)
	return geom.Polygon{Shell: geom.LinearRing{Coords: []geom.Coordinate{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}, Factory: f}, Factory: f}
}

func polygonArea(p geom.Polygon) float64 { return p.Area() }

func TestSnapOverlayOpUnionsOverlappingSquares(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	a := square(0, 0, 2, 2)
	b := square(1, 1, 3, 3)

	result, err := NewSnapOverlayOp(a, b, geomgraph.Union, f).GetResultGeometry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	poly, ok := result.(geom.Polygon)
	if !ok {
		t.Fatalf("expected a polygon result, have %T", result)
	}
	if area := polygonArea(poly); area < 6.9 || area > 7.1 {
		t.Errorf("expected area near 7, have %v", area)
	}
}

func TestSnapIfNeededFallsThroughOnPlainSuccess(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	a := square(0, 0, 2, 2)
	b := square(1, 1, 3, 3)

	result, err := NewSnapIfNeededOverlayOp(a, b, geomgraph.Union, f).GetResultGeometry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	poly, ok := result.(geom.Polygon)
	if !ok {
		t.Fatalf("expected a polygon result, have %T", result)
	}
	if area := polygonArea(poly); area < 6.9 || area > 7.1 {
		t.Errorf("expected area near 7, have %v", area)
	}
}

func TestSnapToleranceUsesSmallerInput(t *testing.T) {
	small := square(0, 0, 0.01, 0.01)
	large := square(0, 0, 1000, 1000)

	tol := snapTolerance(small, large)
	if tol <= 0 {
		t.Fatalf("expected a positive tolerance, have %v", tol)
	}
	if tol > tolOf(small) {
		t.Errorf("expected snap tolerance bounded by the smaller input's tolerance")
	}
}
