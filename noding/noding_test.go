package noding

import (
	"testing"

	"github.com/ctessum/overlay/geom"
)

func TestCrossNodeSplitsBothSegments(t *testing.T) {
	sa := NewSegmentString([]geom.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 2}}, 0)
	sb := NewSegmentString([]geom.Coordinate{{X: 0, Y: 2}, {X: 2, Y: 0}}, 1)

	n := NewNoder()
	n.CrossNode([]*SegmentString{sa}, []*SegmentString{sb})

	edgesA := sa.Split()
	edgesB := sb.Split()

	if len(edgesA) != 2 || len(edgesB) != 2 {
		t.Fatalf("expected 2 split edges on each segment, have %d and %d", len(edgesA), len(edgesB))
	}
	want := geom.Coordinate{X: 1, Y: 1}
	if !edgesA[0][1].Equals2D(want) || !edgesA[1][0].Equals2D(want) {
		t.Errorf("expected split at (1,1) on A, have %v / %v", edgesA[0][1], edgesA[1][0])
	}
	if !edgesB[0][1].Equals2D(want) || !edgesB[1][0].Equals2D(want) {
		t.Errorf("expected split at (1,1) on B, have %v / %v", edgesB[0][1], edgesB[1][0])
	}

	v := NewFastNodingValidator()
	all := append(append([][]geom.Coordinate{}, edgesA...), edgesB...)
	if err := v.Validate(all); err != nil {
		t.Errorf("expected properly noded result, have error: %v", err)
	}
}

func TestSelfNodeFindsBowtieIntersection(t *testing.T) {
	s := NewSegmentString([]geom.Coordinate{
		{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2},
	}, 0)

	n := NewNoder()
	n.SelfNode([]*SegmentString{s})

	edges := s.Split()
	var found bool
	for _, e := range edges {
		for _, c := range e {
			if c.Equals2D(geom.Coordinate{X: 1, Y: 1}) {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("expected the bowtie self-intersection at (1,1) to appear as a split vertex")
	}

	v := NewFastNodingValidator()
	if err := v.Validate(edges); err != nil {
		t.Errorf("expected properly noded result after self-noding, have error: %v", err)
	}
}

func TestValidateCatchesUnnodedInteriorCrossing(t *testing.T) {
	// Two segments that cross at (1,1) but were never noded: the
	// validator must report the unsplit crossing as a failure.
	edges := [][]geom.Coordinate{
		{{X: 0, Y: 0}, {X: 2, Y: 2}},
		{{X: 0, Y: 2}, {X: 2, Y: 0}},
	}
	v := NewFastNodingValidator()
	if err := v.Validate(edges); err == nil {
		t.Errorf("expected a noding failure for an un-split crossing")
	}
}

func TestValidateCatchesCoincidentInteriorVertices(t *testing.T) {
	edges := [][]geom.Coordinate{
		{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}},
		{{X: 0, Y: 2}, {X: 1, Y: 1}, {X: 2, Y: 2}},
	}
	v := NewFastNodingValidator()
	if err := v.Validate(edges); err == nil {
		t.Errorf("expected a noding failure for coincident interior vertices")
	}
}
