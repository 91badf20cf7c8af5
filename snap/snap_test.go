package snap

import (
	"testing"

	"github.com/ctessum/overlay/geom"
)

func TestLineStringSnapperSnapsNearVertex(t *testing.T) {
	coords := []geom.Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	snapPts := []geom.Coordinate{{X: 10.0001, Y: 0}}

	s := NewLineStringSnapper(coords, 0.01)
	out := s.SnapTo(snapPts)

	if !out[1].Equals2D(snapPts[0]) {
		t.Fatalf("expected vertex 1 snapped to %v, have %v", snapPts[0], out[1])
	}
}

func TestLineStringSnapperIgnoresVertexBeyondTolerance(t *testing.T) {
	coords := []geom.Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}}
	snapPts := []geom.Coordinate{{X: 10.5, Y: 0}}

	s := NewLineStringSnapper(coords, 0.01)
	out := s.SnapTo(snapPts)

	if !out[1].Equals2D(coords[1]) {
		t.Fatalf("expected vertex 1 untouched, have %v", out[1])
	}
}

func TestLineStringSnapperInsertsSegmentVertex(t *testing.T) {
	coords := []geom.Coordinate{{X: 0, Y: 0}, {X: 10, Y: 0}}
	snapPts := []geom.Coordinate{{X: 5, Y: 0.001}}

	s := NewLineStringSnapper(coords, 0.01)
	out := s.SnapTo(snapPts)

	if len(out) != 3 {
		t.Fatalf("expected 3 coordinates after segment insertion, have %d", len(out))
	}
	if !out[1].Equals2D(snapPts[0]) {
		t.Fatalf("expected inserted vertex %v, have %v", snapPts[0], out[1])
	}
}

func TestLineStringSnapperClosedRingKeepsClosure(t *testing.T) {
	coords := []geom.Coordinate{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}
	snapPts := []geom.Coordinate{{X: 0.0005, Y: 0.0005}}

	s := NewLineStringSnapper(coords, 0.01)
	out := s.SnapTo(snapPts)

	if !out[0].Equals2D(out[len(out)-1]) {
		t.Fatalf("expected ring to stay closed, have %v .. %v", out[0], out[len(out)-1])
	}
	if !out[0].Equals2D(snapPts[0]) {
		t.Fatalf("expected first vertex snapped, have %v", out[0])
	}
}

func TestGeometrySnapperSnapsPolygonToOther(t *testing.T) {
	a := geom.Polygon{Shell: geom.LinearRing{Coords: []geom.Coordinate{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}}}
	b := geom.Polygon{Shell: geom.LinearRing{Coords: []geom.Coordinate{
		{X: 10.0002, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 10.0002, Y: 10}, {X: 10.0002, Y: 0},
	}}}

	snapped := NewGeometrySnapper(a).SnapTo(b, 0.01).(geom.Polygon)

	if !snapped.Shell.Coords[1].Equals2D(b.Shell.Coords[0]) {
		t.Fatalf("expected shared edge vertex snapped to %v, have %v", b.Shell.Coords[0], snapped.Shell.Coords[1])
	}
}
