// Package snap implements JTS's LineStringSnapper/GeometrySnapper vertex-
// and segment-snapping transform, used to close slivers and align
// near-coincident vertices before a retried overlay attempt.
package snap

import (
	"math"

	"github.com/ctessum/overlay/geom"
)

// LineStringSnapper snaps one coordinate sequence's vertices, and then its
// segments, to a set of target points within a tolerance.
type LineStringSnapper struct {
	srcCoords                     []geom.Coordinate
	snapTolerance                 float64
	allowSnappingToSourceVertices bool
	isClosed                      bool
}

// NewLineStringSnapper returns a snapper for coords at the given tolerance.
func NewLineStringSnapper(coords []geom.Coordinate, tolerance float64) *LineStringSnapper {
	closed := len(coords) > 1 && coords[0].Equals2D(coords[len(coords)-1])
	return &LineStringSnapper{srcCoords: coords, snapTolerance: tolerance, isClosed: closed}
}

// SetAllowSnappingToSourceVertices toggles whether a segment whose endpoint
// already equals the snap point is still a valid segment-snap target; self-
// snap passes true, cross-snap passes false.
func (s *LineStringSnapper) SetAllowSnappingToSourceVertices(allow bool) {
	s.allowSnappingToSourceVertices = allow
}

// SnapTo returns a new coordinate sequence with vertices and segments
// snapped to snapPts.
func (s *LineStringSnapper) SnapTo(snapPts []geom.Coordinate) []geom.Coordinate {
	coords := append([]geom.Coordinate(nil), s.srcCoords...)
	coords = s.snapVertices(coords, snapPts)
	coords = s.snapSegments(coords, snapPts)
	return coords
}

// snapVertices replaces each source vertex with a snap point within
// tolerance, if one exists and the vertex is not already exactly equal to
// it. Closing a ring keeps the duplicated first/last vertex in sync.
func (s *LineStringSnapper) snapVertices(coords []geom.Coordinate, snapPts []geom.Coordinate) []geom.Coordinate {
	lastIdx := len(coords) - 1
	for i := range coords {
		if s.isClosed && i == lastIdx {
			continue
		}
		snap, ok := s.findSnapForVertex(coords[i], snapPts)
		if !ok {
			continue
		}
		coords[i] = snap
		if i == 0 && s.isClosed {
			coords[lastIdx] = snap
		}
	}
	return coords
}

func (s *LineStringSnapper) findSnapForVertex(v geom.Coordinate, snapPts []geom.Coordinate) (geom.Coordinate, bool) {
	for _, p := range snapPts {
		if v.Equals2D(p) {
			return geom.Coordinate{}, false
		}
		if distance(v, p) <= s.snapTolerance {
			return p, true
		}
	}
	return geom.Coordinate{}, false
}

// snapSegments inserts any remaining snap point, not already coincident
// with a vertex, as a new vertex on its nearest source segment, tie-broken
// by distance then lowest segment index.
func (s *LineStringSnapper) snapSegments(coords []geom.Coordinate, snapPts []geom.Coordinate) []geom.Coordinate {
	for _, p := range dedupeClosedSet(snapPts) {
		if containsCoord(coords, p) {
			continue
		}
		idx := s.nearestSegmentIndex(coords, p)
		if idx < 0 {
			continue
		}
		coords = insertAt(coords, idx+1, p)
	}
	return coords
}

func (s *LineStringSnapper) nearestSegmentIndex(coords []geom.Coordinate, p geom.Coordinate) int {
	best := -1
	bestDist := math.Inf(1)
	for i := 0; i < len(coords)-1; i++ {
		a, b := coords[i], coords[i+1]
		if !s.allowSnappingToSourceVertices && (p.Equals2D(a) || p.Equals2D(b)) {
			continue
		}
		d := distToSegment(p, a, b)
		if d <= s.snapTolerance && d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// dedupeClosedSet drops the duplicated closing point of snapPts, if its
// first and last coordinates coincide, so a closed ring's snap set is
// processed as distinct points only.
func dedupeClosedSet(snapPts []geom.Coordinate) []geom.Coordinate {
	if len(snapPts) > 1 && snapPts[0].Equals2D(snapPts[len(snapPts)-1]) {
		return snapPts[:len(snapPts)-1]
	}
	return snapPts
}

func containsCoord(coords []geom.Coordinate, p geom.Coordinate) bool {
	for _, c := range coords {
		if c.Equals2D(p) {
			return true
		}
	}
	return false
}

func insertAt(coords []geom.Coordinate, i int, p geom.Coordinate) []geom.Coordinate {
	out := make([]geom.Coordinate, 0, len(coords)+1)
	out = append(out, coords[:i]...)
	out = append(out, p)
	out = append(out, coords[i:]...)
	return out
}

func distance(a, b geom.Coordinate) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
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
