package precision

import (
	"testing"

	"github.com/ctessum/overlay/geom"
)

func TestCommonBitsFindsSharedLeadingBits(t *testing.T) {
	c := NewCommonBits()
	c.Add(123456.111)
	c.Add(123456.222)
	c.Add(123456.333)
	common := c.Common()
	if common < 123456.0 || common > 123457.0 {
		t.Errorf("expected common value near 123456, have %v", common)
	}
}

func TestCommonBitsRemoverRoundTrips(t *testing.T) {
	r := NewCommonBitsRemover()
	square := geom.Polygon{Shell: geom.LinearRing{Coords: []geom.Coordinate{
		{X: 100000.0, Y: 200000.0},
		{X: 100002.0, Y: 200000.0},
		{X: 100002.0, Y: 200002.0},
		{X: 100000.0, Y: 200002.0},
		{X: 100000.0, Y: 200000.0},
	}}}
	r.Add(square)

	removed := r.RemoveCommonBits(square).(geom.Polygon)
	restored := r.AddCommonBits(removed).(geom.Polygon)

	for i, c := range restored.Shell.Coords {
		want := square.Shell.Coords[i]
		if !c.Equals2D(want) {
			t.Errorf("coordinate %d: expected %v, have %v", i, want, c)
		}
	}
}
