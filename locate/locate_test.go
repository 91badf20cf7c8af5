package locate

import (
	"testing"

	"github.com/ctessum/overlay/geom"
)

func TestPointLocatorPolygon(t *testing.T) {
	f := geom.NewGeometryFactory(nil)
	shell := f.CreateLinearRing([]geom.Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}})
	p := f.CreatePolygon(shell, nil)

	cases := []struct {
		c    geom.Coordinate
		want geom.Location
	}{
		{geom.Coordinate{X: 5, Y: 5}, geom.Interior},
		{geom.Coordinate{X: 20, Y: 20}, geom.Exterior},
		{geom.Coordinate{X: 0, Y: 5}, geom.Boundary},
	}
	var pl PointLocator
	for _, c := range cases {
		if got := pl.Locate(c.c, p); got != c.want {
			t.Errorf("Locate(%v): want %v, have %v", c.c, c.want, got)
		}
	}
}

func TestLineIntersectorCross(t *testing.T) {
	var li LineIntersector
	li.ComputeIntersection(
		geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 2, Y: 2},
		geom.Coordinate{X: 0, Y: 2}, geom.Coordinate{X: 2, Y: 0},
	)
	if !li.HasIntersection() {
		t.Fatalf("expected intersection")
	}
	got := li.GetIntersection(0)
	if got.X != 1 || got.Y != 1 {
		t.Errorf("want (1,1), have (%v,%v)", got.X, got.Y)
	}
	if !li.IsProper() {
		t.Errorf("expected proper intersection")
	}
}

func TestLineIntersectorParallelNoOverlap(t *testing.T) {
	var li LineIntersector
	li.ComputeIntersection(
		geom.Coordinate{X: 0, Y: 0}, geom.Coordinate{X: 1, Y: 0},
		geom.Coordinate{X: 0, Y: 1}, geom.Coordinate{X: 1, Y: 1},
	)
	if li.HasIntersection() {
		t.Errorf("expected no intersection for parallel non-coincident segments")
	}
}
