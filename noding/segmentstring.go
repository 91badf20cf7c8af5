// Package noding subdivides line segments at every pairwise intersection so
// the resulting edge set has intersections only at vertices.
package noding

import (
	"math"
	"sort"

	"github.com/ctessum/overlay/geom"
)

// SegmentString is one input linework (a ring, line, or isolated segment
// sequence) tagged with the argument index it came from, plus whatever
// intersection points self- and cross-noding have discovered on it so far.
type SegmentString struct {
	Coords   []geom.Coordinate
	ArgIndex int

	interior map[int][]nodeEntry // segment index -> unsorted interior intersections
	isNode   []bool              // parallel to Coords; true where a node falls on an original vertex
}

type nodeEntry struct {
	frac  float64
	coord geom.Coordinate
}

// NewSegmentString wraps coords for argIndex. Both endpoints are always
// nodes.
func NewSegmentString(coords []geom.Coordinate, argIndex int) *SegmentString {
	s := &SegmentString{
		Coords:   coords,
		ArgIndex: argIndex,
		interior: make(map[int][]nodeEntry),
		isNode:   make([]bool, len(coords)),
	}
	if len(coords) > 0 {
		s.isNode[0] = true
		s.isNode[len(coords)-1] = true
	}
	return s
}

// AddIntersection records that coord was found to intersect segment i
// (between Coords[i] and Coords[i+1]). If coord coincides with one of the
// segment's own endpoints, that existing vertex is simply marked as a node;
// otherwise a new interior split point is recorded.
func (s *SegmentString) AddIntersection(i int, coord geom.Coordinate) {
	if coord.Equals2D(s.Coords[i]) {
		s.isNode[i] = true
		return
	}
	if coord.Equals2D(s.Coords[i+1]) {
		s.isNode[i+1] = true
		return
	}
	s.interior[i] = append(s.interior[i], nodeEntry{frac: segmentFraction(s.Coords[i], s.Coords[i+1], coord), coord: coord})
}

func segmentFraction(p0, p1, pt geom.Coordinate) float64 {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	if math.Abs(dx) > math.Abs(dy) {
		return (pt.X - p0.X) / dx
	}
	return (pt.Y - p0.Y) / dy
}

// nodedCoordinates returns the full coordinate sequence with every recorded
// interior intersection spliced in along its segment (sorted by fractional
// distance), alongside a parallel isNode slice.
func (s *SegmentString) nodedCoordinates() ([]geom.Coordinate, []bool) {
	var coords []geom.Coordinate
	var nodes []bool
	for i := 0; i < len(s.Coords); i++ {
		coords = append(coords, s.Coords[i])
		nodes = append(nodes, s.isNode[i])
		if i == len(s.Coords)-1 {
			break
		}
		pts := append([]nodeEntry(nil), s.interior[i]...)
		sort.Slice(pts, func(a, b int) bool { return pts[a].frac < pts[b].frac })
		for _, p := range pts {
			coords = append(coords, p.coord)
			nodes = append(nodes, true)
		}
	}
	return coords, nodes
}

// Split decomposes the noded coordinate sequence into sub-edges whose shared
// vertices are exactly the recorded intersection points. Interior,
// non-intersection vertices of the original linework are preserved inside
// whichever sub-edge they fall in.
func (s *SegmentString) Split() [][]geom.Coordinate {
	coords, nodes := s.nodedCoordinates()
	if len(coords) < 2 {
		return nil
	}
	var edges [][]geom.Coordinate
	start := 0
	for i := 1; i < len(coords); i++ {
		if !nodes[i] {
			continue
		}
		edges = append(edges, append([]geom.Coordinate(nil), coords[start:i+1]...))
		start = i
	}
	return edges
}
