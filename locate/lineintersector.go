package locate

import (
	"math"

	"github.com/ctessum/overlay/geom"
)

// LineIntersector computes the intersection of two segments, reporting
// whether the intersection is proper (a single point not coincident with
// either segment's endpoints) and whether it lies in a segment's interior
//. The arithmetic is adapted from the reference geometry
// package's findIntersection in intersection.go, itself adapted from the
// as3polyclip / Martínez-Rueda clipper.
type LineIntersector struct {
	intersections  []geom.Coordinate
	isProperFlag   bool
	isInteriorFlag bool
}

// ComputeIntersection computes the intersection(s) of segment p0-p1 with
// segment p2-p3.
func (li *LineIntersector) ComputeIntersection(p0, p1, p2, p3 geom.Coordinate) {
	li.intersections = nil
	li.isProperFlag = false
	li.isInteriorFlag = false

	n, pi0, pi1 := findIntersection(p0, p1, p2, p3)
	if n == 0 {
		return
	}
	li.intersections = append(li.intersections, pi0)
	if n > 1 {
		li.intersections = append(li.intersections, pi1)
	}
	for _, pt := range li.intersections {
		if !(pt.Equals2D(p0) || pt.Equals2D(p1)) || !(pt.Equals2D(p2) || pt.Equals2D(p3)) {
			li.isInteriorFlag = true
		}
	}
	if n == 1 {
		proper := true
		for _, end := range []geom.Coordinate{p0, p1, p2, p3} {
			if pi0.Equals2D(end) {
				proper = false
				break
			}
		}
		li.isProperFlag = proper
	}
}

// HasIntersection reports whether the last ComputeIntersection call found
// an intersection.
func (li *LineIntersector) HasIntersection() bool { return len(li.intersections) > 0 }

// IsProper reports whether the intersection is a single point interior to
// both segments (not coincident with any endpoint).
func (li *LineIntersector) IsProper() bool { return li.isProperFlag }

// IsInteriorIntersection reports whether any computed intersection point
// lies in the interior (not at an endpoint) of either input segment passed
// to the most recent ComputeIntersection call.
func (li *LineIntersector) IsInteriorIntersection() bool { return li.isInteriorFlag }

// IntersectionCount returns how many intersection points were computed (0,
// 1, or 2 for collinear overlapping segments).
func (li *LineIntersector) IntersectionCount() int { return len(li.intersections) }

// GetIntersection returns the i'th computed intersection point.
func (li *LineIntersector) GetIntersection(i int) geom.Coordinate { return li.intersections[i] }

func findIntersection(p0, p1, p2, p3 geom.Coordinate) (int, geom.Coordinate, geom.Coordinate) {
	var nan geom.Coordinate
	nan.X, nan.Y = math.NaN(), math.NaN()

	d0 := geom.Coordinate{X: p1.X - p0.X, Y: p1.Y - p0.Y}
	d1 := geom.Coordinate{X: p3.X - p2.X, Y: p3.Y - p2.Y}
	e := geom.Coordinate{X: p2.X - p0.X, Y: p2.Y - p0.Y}

	kross := d0.X*d1.Y - d0.Y*d1.X
	sqrKross := kross * kross
	sqrLen0 := d0.X*d0.X + d0.Y*d0.Y
	sqrLen1 := d1.X*d1.X + d1.Y*d1.Y

	const sqrEpsilon = 0.0

	if sqrKross > sqrEpsilon*sqrLen0*sqrLen1 {
		// Segments are not parallel.
		s := (e.X*d1.Y - e.Y*d1.X) / kross
		if s < 0 || s > 1 {
			return 0, geom.Coordinate{}, geom.Coordinate{}
		}
		t := (e.X*d0.Y - e.Y*d0.X) / kross
		if t < 0 || t > 1 {
			return 0, nan, nan
		}
		pi := geom.Coordinate{X: p0.X + s*d0.X, Y: p0.Y + s*d0.Y}
		return 1, pi, nan
	}

	// Segments are parallel; test for collinear overlap.
	sqrLenE := e.X*e.X + e.Y*e.Y
	kross = e.X*d0.Y - e.Y*d0.X
	sqrKross = kross * kross
	if sqrKross > sqrEpsilon*sqrLen0*sqrLenE {
		return 0, nan, nan
	}

	s0 := (d0.X*e.X + d0.Y*e.Y) / sqrLen0
	s1 := s0 + (d0.X*d1.X+d0.Y*d1.Y)/sqrLen0
	smin := math.Min(s0, s1)
	smax := math.Max(s0, s1)

	w := overlapInterval(0, 1, smin, smax)
	if len(w) == 0 {
		return 0, nan, nan
	}
	pi0 := geom.Coordinate{X: p0.X + w[0]*d0.X, Y: p0.Y + w[0]*d0.Y}
	if len(w) == 1 {
		return 1, pi0, nan
	}
	pi1 := geom.Coordinate{X: p0.X + w[1]*d0.X, Y: p0.Y + w[1]*d0.Y}
	return 2, pi0, pi1
}

func overlapInterval(u0, u1, v0, v1 float64) []float64 {
	if u1 < v0 || u0 > v1 {
		return nil
	}
	if u1 == v0 {
		return []float64{u1}
	}
	if u0 == v1 {
		return []float64{u0}
	}
	var lo, hi float64
	if u0 < v0 {
		lo = v0
	} else {
		lo = u0
	}
	if u1 > v1 {
		hi = v1
	} else {
		hi = u1
	}
	return []float64{lo, hi}
}
