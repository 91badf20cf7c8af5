package union

import (
	"testing"

	"github.com/ctessum/overlay/geom"
)

func square(x0, y0, x1, y1 float64, f *geom.GeometryFactory) geom.Polygon {
	return geom.Polygon{Shell: geom.LinearRing{Coords: []geom.Coordinate{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}, Factory: f}, Factory: f}
}

func polygonArea(p geom.Polygon) float64 { return p.Area() }

func TestCascadedUnionOfOverlappingSquares(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	polys := []geom.Polygon{
		square(0, 0, 2, 2, f),
		square(1, 1, 3, 3, f),
	}
	result, err := NewCascadedUnion(polys, f).Union()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	poly, ok := result.(geom.Polygon)
	if !ok {
		t.Fatalf("expected a single polygon, have %T", result)
	}
	if area := polygonArea(poly); area < 6.9 || area > 7.1 {
		t.Errorf("expected area near 7, have %v", area)
	}
}

func TestCascadedUnionIsOneShot(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	c := NewCascadedUnion([]geom.Polygon{square(0, 0, 1, 1, f)}, f)
	if _, err := c.Union(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Union(); err == nil {
		t.Fatalf("expected error on second Union call")
	}
}

func TestOverlapUnionOfDisjointSquaresIsOptimized(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	a := square(0, 0, 1, 1, f)
	b := square(2, 2, 3, 3, f)

	result, optimized, err := OverlapUnion(a, b, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !optimized {
		t.Errorf("expected a disjoint-envelope union to be optimized")
	}
	mp, ok := result.(geom.MultiPolygon)
	if !ok {
		t.Fatalf("expected a multipolygon, have %T", result)
	}
	if len(mp.Polys) != 2 {
		t.Errorf("expected 2 components, have %d", len(mp.Polys))
	}
}

func TestOverlapUnionOfOverlappingSquaresIsStillCorrect(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	a := square(0, 0, 2, 2, f)
	b := square(1, 1, 3, 3, f)

	result, _, err := OverlapUnion(a, b, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	poly, ok := result.(geom.Polygon)
	if !ok {
		t.Fatalf("expected a single polygon, have %T", result)
	}
	if area := polygonArea(poly); area < 6.9 || area > 7.1 {
		t.Errorf("expected area near 7, have %v", area)
	}
}

func TestCascadedUnionOfDisjointSquaresProducesMultiPolygon(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	polys := []geom.Polygon{
		square(0, 0, 1, 1, f),
		square(2, 2, 3, 3, f),
	}
	result, err := NewCascadedUnion(polys, f).Union()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mp, ok := result.(geom.MultiPolygon)
	if !ok {
		t.Fatalf("expected a multipolygon, have %T", result)
	}
	if len(mp.Polys) != 2 {
		t.Errorf("expected 2 components, have %d", len(mp.Polys))
	}
}

func TestUnaryUnionDissolvesOverlappingPolygons(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	a := square(0, 0, 2, 2, f)
	b := square(1, 1, 3, 3, f)

	result, err := NewUnaryUnionOp([]geom.Geom{a, b}, f).Union()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	poly, ok := result.(geom.Polygon)
	if !ok {
		t.Fatalf("expected a single polygon, have %T", result)
	}
	if area := polygonArea(poly); area < 6.9 || area > 7.1 {
		t.Errorf("expected area near 7, have %v", area)
	}
}

func TestUnaryUnionOfThreePolygonsOneDisjoint(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	a := square(0, 0, 2, 2, f)
	b := square(1, 1, 3, 3, f)
	c := square(10, 10, 11, 11, f)

	result, err := NewUnaryUnionOp([]geom.Geom{a, b, c}, f).Union()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mp, ok := result.(geom.MultiPolygon)
	if !ok {
		t.Fatalf("expected a multipolygon, have %T", result)
	}
	if len(mp.Polys) != 2 {
		t.Fatalf("expected 2 components, have %d", len(mp.Polys))
	}
	for _, p := range mp.Polys {
		area := polygonArea(p)
		if area > 6.9 && area < 7.1 {
			return
		}
	}
	t.Errorf("expected one component with area near 7")
}

func TestUnaryUnionPointAbsorbedByPolygon(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	poly := square(0, 0, 10, 10, f)
	inside := geom.Point{Coordinate: geom.Coordinate{X: 5, Y: 5}, Factory: f}

	result, err := NewUnaryUnionOp([]geom.Geom{inside, poly}, f).Union()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := result.(geom.Polygon); !ok {
		t.Fatalf("expected the point absorbed into a bare polygon, have %T", result)
	}
}

func TestUnaryUnionPointOutsidePolygonKeptSeparate(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	poly := square(0, 0, 10, 10, f)
	outside := geom.Point{Coordinate: geom.Coordinate{X: 20, Y: 20}, Factory: f}

	result, err := NewUnaryUnionOp([]geom.Geom{outside, poly}, f).Union()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gc, ok := result.(geom.GeometryCollection)
	if !ok {
		t.Fatalf("expected a geometry collection, have %T", result)
	}
	if len(gc.Geoms) != 2 {
		t.Errorf("expected 2 components, have %d", len(gc.Geoms))
	}
}
