package geom

import "testing"

func TestEnvelopeIntersects(t *testing.T) {
	a := NewEnvelopeCoords(Coordinate{X: 0, Y: 0}, Coordinate{X: 2, Y: 2})
	b := NewEnvelopeCoords(Coordinate{X: 1, Y: 1}, Coordinate{X: 3, Y: 3})
	c := NewEnvelopeCoords(Coordinate{X: 10, Y: 10}, Coordinate{X: 11, Y: 11})

	if !a.Intersects(b) {
		t.Errorf("expected a and b to intersect")
	}
	if a.Intersects(c) {
		t.Errorf("expected a and c to not intersect")
	}

	got := a.Intersection(b)
	want := &Envelope{Min: Coordinate{X: 1, Y: 1}, Max: Coordinate{X: 2, Y: 2}}
	if got.Min != want.Min || got.Max != want.Max {
		t.Errorf("Intersection: want %v, have %v", want, got)
	}
}

func TestEnvelopeIsNull(t *testing.T) {
	e := NewEnvelope()
	if !e.IsNull() {
		t.Errorf("expected fresh envelope to be null")
	}
	e.ExpandToInclude(Coordinate{X: 1, Y: 1})
	if e.IsNull() {
		t.Errorf("expected envelope to be non-null after expansion")
	}
}

func TestSignedAreaOrientation(t *testing.T) {
	ccw := []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	cw := []Coordinate{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	if SignedArea(ccw) <= 0 {
		t.Errorf("expected positive area for CCW ring")
	}
	if SignedArea(cw) >= 0 {
		t.Errorf("expected negative area for CW ring")
	}
}

func TestPolygonArea(t *testing.T) {
	f := NewGeometryFactory(nil)
	shell := f.CreateLinearRing([]Coordinate{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}})
	hole := f.CreateLinearRing([]Coordinate{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 1}})
	p := f.CreatePolygon(shell, []LinearRing{hole})
	if got, want := p.Area(), 15.0; got != want {
		t.Errorf("Area: want %v, have %v", want, got)
	}
}
