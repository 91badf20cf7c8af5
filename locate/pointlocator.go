// Package locate provides JTS's PointLocator and LineIntersector
// collaborators: point-in-geometry classification and segment-segment
// intersection, adapted from the ray-casting and segment-intersection
// routines in the reference geometry package's within.go and
// intersection.go.
package locate

import (
	"math"

	"github.com/ctessum/overlay/geom"
)

// PointLocator classifies a point as INTERIOR, BOUNDARY, or EXTERIOR
// relative to a geometry.
type PointLocator struct{}

// Locate classifies c against g.
func (PointLocator) Locate(c geom.Coordinate, g geom.Geom) geom.Location {
	switch v := g.(type) {
	case geom.Point:
		if c.Equals2D(v.Coordinate) {
			return geom.Interior
		}
		return geom.Exterior
	case geom.MultiPoint:
		for _, p := range v.Pts {
			if c.Equals2D(p.Coordinate) {
				return geom.Interior
			}
		}
		return geom.Exterior
	case geom.LineString:
		return locateOnLine(c, v.Coords, v.IsClosed())
	case geom.LinearRing:
		return locateOnLine(c, v.Coords, true)
	case geom.MultiLineString:
		best := geom.Exterior
		for _, l := range v.LineStrings {
			loc := locateOnLine(c, l.Coords, l.IsClosed())
			if loc == geom.Boundary {
				return geom.Boundary
			}
			if loc == geom.Interior {
				best = geom.Interior
			}
		}
		return best
	case geom.Polygon:
		return locateInPolygon(c, v)
	case geom.MultiPolygon:
		for _, p := range v.Polys {
			loc := locateInPolygon(c, p)
			if loc != geom.Exterior {
				return loc
			}
		}
		return geom.Exterior
	case geom.GeometryCollection:
		best := geom.Exterior
		for _, sub := range v.Geoms {
			loc := PointLocator{}.Locate(c, sub)
			if loc == geom.Boundary {
				return geom.Boundary
			}
			if loc == geom.Interior {
				best = geom.Interior
			}
		}
		return best
	default:
		return geom.Exterior
	}
}

func locateOnLine(c geom.Coordinate, coords []geom.Coordinate, closed bool) geom.Location {
	if len(coords) == 0 {
		return geom.Exterior
	}
	if !closed {
		if c.Equals2D(coords[0]) || c.Equals2D(coords[len(coords)-1]) {
			return geom.Boundary
		}
	}
	for i := 0; i < len(coords)-1; i++ {
		if pointOnSegment(c, coords[i], coords[i+1]) {
			return geom.Interior
		}
	}
	return geom.Exterior
}

// locateInPolygon adapts pointInPolygon from the reference geometry
// package's within.go, returning BOUNDARY for points on any ring and
// accounting for holes.
func locateInPolygon(c geom.Coordinate, p geom.Polygon) geom.Location {
	shellLoc := locateInRing(c, p.Shell.Coords)
	if shellLoc == geom.Boundary {
		return geom.Boundary
	}
	if shellLoc == geom.Exterior {
		return geom.Exterior
	}
	for _, h := range p.Holes {
		holeLoc := locateInRing(c, h.Coords)
		if holeLoc == geom.Boundary {
			return geom.Boundary
		}
		if holeLoc == geom.Interior {
			return geom.Exterior
		}
	}
	return geom.Interior
}

// LocateInRing classifies pt against a bare coordinate ring, exposed for
// callers (polygon ring assembly's hole-placement search) that need the
// point-in-ring test without a full Polygon value.
func LocateInRing(pt geom.Coordinate, ring []geom.Coordinate) geom.Location {
	return locateInRing(pt, ring)
}

func locateInRing(pt geom.Coordinate, ring []geom.Coordinate) geom.Location {
	if len(ring) < 3 {
		return geom.Exterior
	}
	in := false
	n := len(ring)
	last := ring[n-1]
	if !last.Equals2D(ring[0]) {
		if pointOnSegment(pt, last, ring[0]) {
			return geom.Boundary
		}
		if rayIntersectsSegment(pt, last, ring[0]) {
			in = !in
		}
	}
	for i := 1; i < n; i++ {
		if pointOnSegment(pt, ring[i-1], ring[i]) {
			return geom.Boundary
		}
		if rayIntersectsSegment(pt, ring[i-1], ring[i]) {
			in = !in
		}
	}
	if in {
		return geom.Interior
	}
	return geom.Exterior
}

// rayIntersectsSegment is ported directly from the reference geometry
// package's within.go; see the Rosetta Code ray-casting algorithm it
// itself cites.
func rayIntersectsSegment(p, a, b geom.Coordinate) bool {
	if a.Y > b.Y {
		a, b = b, a
	}
	for p.Y == a.Y || p.Y == b.Y {
		p.Y = math.Nextafter(p.Y, math.Inf(1))
	}
	if p.Y < a.Y || p.Y > b.Y {
		return false
	}
	if a.X > b.X {
		if p.X >= a.X {
			return false
		}
		if p.X < b.X {
			return true
		}
	} else {
		if p.X > b.X {
			return false
		}
		if p.X < a.X {
			return true
		}
	}
	return (p.Y-a.Y)/(p.X-a.X) >= (b.Y-a.Y)/(b.X-a.X)
}

const tolerance = 1e-9

func pointOnSegment(p, a, b geom.Coordinate) bool {
	return distToSegment(p, a, b) < tolerance
}

func distToSegment(p, a, b geom.Coordinate) float64 {
	vx, vy := b.X-a.X, b.Y-a.Y
	wx, wy := p.X-a.X, p.Y-a.Y
	c1 := vx*wx + vy*wy
	if c1 <= 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	c2 := vx*vx + vy*vy
	if c2 <= c1 {
		return math.Hypot(p.X-b.X, p.Y-b.Y)
	}
	t := c1 / c2
	px, py := a.X+t*vx, a.Y+t*vy
	return math.Hypot(p.X-px, p.Y-py)
}
