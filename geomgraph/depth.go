package geomgraph

import "github.com/ctessum/overlay/geom"

const (
	depthLeft  = 0
	depthRight = 1
)

// Depth is the per-argument (LEFT, RIGHT) integer winding-depth pair
// accumulated when duplicate edges merge. A null depth (no
// sides ever set) is distinguished from a depth of 0 so the first label
// seeded onto a merged edge can be detected.
type Depth struct {
	depth    [2][2]int
	isNull   [2][2]bool
}

// NewDepth returns a Depth with every side marked null.
func NewDepth() *Depth {
	d := &Depth{}
	for i := 0; i < 2; i++ {
		for s := 0; s < 2; s++ {
			d.isNull[i][s] = true
		}
	}
	return d
}

// IsNull reports whether argument i has no depth recorded on either side.
func (d *Depth) IsNull(i int) bool { return d.isNull[i][depthLeft] && d.isNull[i][depthRight] }

// GetLeft/GetRight return the recorded depth, or 0 if null.
func (d *Depth) GetLeft(i int) int  { return d.depth[i][depthLeft] }
func (d *Depth) GetRight(i int) int { return d.depth[i][depthRight] }

func locationFromDepth(depth int) geom.Location {
	if depth <= 0 {
		return geom.Exterior
	}
	return geom.Interior
}

// AddFromLabelElement increments (or seeds) argument i's depth according
// to a label element's LEFT/RIGHT/ON locations: INTERIOR adds 1,
// EXTERIOR/BOUNDARY leave the side untouched if already set, or seed it at
// 0; NONE leaves the side untouched.
func (d *Depth) AddFromLabelElement(i int, e LabelElement) {
	if !e.defined {
		return
	}
	d.addSide(i, depthLeft, e.Left)
	d.addSide(i, depthRight, e.Right)
}

func (d *Depth) addSide(i, side int, loc geom.Location) {
	if loc == geom.Interior {
		if d.isNull[i][side] {
			d.depth[i][side] = 1
		} else {
			d.depth[i][side]++
		}
		d.isNull[i][side] = false
		return
	}
	if loc == geom.Exterior || loc == geom.Boundary {
		if d.isNull[i][side] {
			d.depth[i][side] = 0
			d.isNull[i][side] = false
		}
	}
}

// Normalize subtracts the minimum depth recorded for argument i from both
// sides, so the lower side is always 0.
func (d *Depth) Normalize(i int) {
	if d.IsNull(i) {
		return
	}
	min := d.depth[i][depthLeft]
	if d.depth[i][depthRight] < min {
		min = d.depth[i][depthRight]
	}
	if min < 0 {
		min = 0
	}
	d.depth[i][depthLeft] -= min
	d.depth[i][depthRight] -= min
}

// Delta returns LEFT-RIGHT for argument i; Delta == 0 signals a
// dimensional collapse.
func (d *Depth) Delta(i int) int { return d.depth[i][depthLeft] - d.depth[i][depthRight] }

// LabelFromDepth derives an area label element for argument i from its
// normalized depth: depth 0 -> EXTERIOR, depth >=1 -> INTERIOR on each
// side.
func (d *Depth) LabelFromDepth(i int) LabelElement {
	if d.IsNull(i) {
		return nullElement()
	}
	left := locationFromDepth(d.depth[i][depthLeft])
	right := locationFromDepth(d.depth[i][depthRight])
	on := left
	if left != right {
		// the edge itself sits between differing depths; ON takes the
		// boundary classification since it separates interior from
		// exterior.
		on = geom.Boundary
	}
	return areaElement(on, left, right)
}
