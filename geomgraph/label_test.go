package geomgraph

import (
	"testing"

	"github.com/ctessum/overlay/geom"
)

func TestLabelFlipPreservesOn(t *testing.T) {
	l := NewAreaLabel(0, geom.Boundary, geom.Interior, geom.Exterior)
	f := l.Flip()
	if f.Elt[0].On != geom.Boundary {
		t.Errorf("flip should preserve ON, have %v", f.Elt[0].On)
	}
	if f.Elt[0].Left != geom.Exterior || f.Elt[0].Right != geom.Interior {
		t.Errorf("flip should swap LEFT/RIGHT, have left=%v right=%v", f.Elt[0].Left, f.Elt[0].Right)
	}
}

func TestLabelMergeFillsNone(t *testing.T) {
	a := NewAreaLabel(0, geom.None, geom.Interior, geom.None)
	b := NewAreaLabel(0, geom.Boundary, geom.None, geom.Exterior)
	m := a.Merge(b)
	if m.Elt[0].On != geom.Boundary || m.Elt[0].Left != geom.Interior || m.Elt[0].Right != geom.Exterior {
		t.Errorf("unexpected merge result: %+v", m.Elt[0])
	}
}

func TestIsResultTable(t *testing.T) {
	cases := []struct {
		loc0, loc1 geom.Location
		op         OpCode
		want       bool
	}{
		{geom.Interior, geom.Interior, Intersection, true},
		{geom.Interior, geom.Exterior, Intersection, false},
		{geom.Interior, geom.Exterior, Union, true},
		{geom.Exterior, geom.Exterior, Union, false},
		{geom.Interior, geom.Exterior, Difference, true},
		{geom.Interior, geom.Interior, Difference, false},
		{geom.Interior, geom.Exterior, SymDifference, true},
		{geom.Interior, geom.Interior, SymDifference, false},
		{geom.Boundary, geom.Exterior, Intersection, false},
		{geom.Boundary, geom.Interior, Union, true},
	}
	for _, c := range cases {
		if got := IsResult(c.loc0, c.loc1, c.op); got != c.want {
			t.Errorf("IsResult(%v,%v,%v): want %v, have %v", c.loc0, c.loc1, c.op, c.want, got)
		}
	}
}

func TestDepthDeltaCollapse(t *testing.T) {
	d := NewDepth()
	d.AddFromLabelElement(0, areaElement(geom.Interior, geom.Interior, geom.Interior))
	d.Normalize(0)
	if delta := d.Delta(0); delta != 0 {
		t.Errorf("expected delta 0 for equal-depth sides, have %d", delta)
	}
}

func TestEdgeListMergesReversedDuplicate(t *testing.T) {
	el := NewEdgeList()
	fwd := []geom.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 1}}
	rev := []geom.Coordinate{{X: 1, Y: 1}, {X: 0, Y: 0}}

	e1 := NewEdge(fwd, NewAreaLabel(0, geom.Boundary, geom.Interior, geom.Exterior))
	e2 := NewEdge(rev, NewAreaLabel(1, geom.Boundary, geom.Interior, geom.Exterior))

	got1 := el.Add(e1, 0)
	got2 := el.Add(e2, 1)

	if got1 != got2 {
		t.Fatalf("expected reversed duplicate to merge into the same edge")
	}
	if len(el.Edges()) != 1 {
		t.Errorf("expected exactly one unique edge, have %d", len(el.Edges()))
	}
	// arg 1 was added via the reversed edge, so its label should have been
	// flipped before merging: LEFT and RIGHT swapped relative to e2's
	// original (unflipped) label.
	merged := got1.Label
	if merged.Elt[1].Left != geom.Exterior || merged.Elt[1].Right != geom.Interior {
		t.Errorf("expected flipped label on arg 1, have left=%v right=%v", merged.Elt[1].Left, merged.Elt[1].Right)
	}
}
