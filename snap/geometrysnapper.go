package snap

import "github.com/ctessum/overlay/geom"

// GeometrySnapper applies a LineStringSnapper to every ring and line of a
// geometry, against a shared set of snap points.
type GeometrySnapper struct {
	src geom.Geom
}

// NewGeometrySnapper returns a snapper for src.
func NewGeometrySnapper(src geom.Geom) *GeometrySnapper {
	return &GeometrySnapper{src: src}
}

// SnapTo snaps src's linework to the vertices of other, at tolerance.
func (s *GeometrySnapper) SnapTo(other geom.Geom, tolerance float64) geom.Geom {
	return snapLinework(s.src, geom.Coordinates(other), tolerance, false)
}

// SnapToSelf snaps src's linework to its own vertices, closing slivers left
// by near-coincident vertices that were never exactly equal.
func (s *GeometrySnapper) SnapToSelf(tolerance float64) geom.Geom {
	return snapLinework(s.src, geom.Coordinates(s.src), tolerance, true)
}

// snapLinework rebuilds g's rings and lines via LineStringSnapper, leaving
// points untouched since snapping only affects linework.
func snapLinework(g geom.Geom, snapPts []geom.Coordinate, tolerance float64, allowSelfVertices bool) geom.Geom {
	switch v := g.(type) {
	case geom.LineString:
		return geom.LineString{Coords: snapCoords(v.Coords, snapPts, tolerance, allowSelfVertices), Factory: v.Factory}
	case geom.LinearRing:
		return geom.LinearRing{Coords: snapCoords(v.Coords, snapPts, tolerance, allowSelfVertices), Factory: v.Factory}
	case geom.MultiLineString:
		lines := make([]geom.LineString, len(v.LineStrings))
		for i, l := range v.LineStrings {
			lines[i] = snapLinework(l, snapPts, tolerance, allowSelfVertices).(geom.LineString)
		}
		return geom.MultiLineString{LineStrings: lines, Factory: v.Factory}
	case geom.Polygon:
		shell := snapLinework(v.Shell, snapPts, tolerance, allowSelfVertices).(geom.LinearRing)
		holes := make([]geom.LinearRing, len(v.Holes))
		for i, h := range v.Holes {
			holes[i] = snapLinework(h, snapPts, tolerance, allowSelfVertices).(geom.LinearRing)
		}
		return geom.Polygon{Shell: shell, Holes: holes, Factory: v.Factory}
	case geom.MultiPolygon:
		polys := make([]geom.Polygon, len(v.Polys))
		for i, p := range v.Polys {
			polys[i] = snapLinework(p, snapPts, tolerance, allowSelfVertices).(geom.Polygon)
		}
		return geom.MultiPolygon{Polys: polys, Factory: v.Factory}
	case geom.GeometryCollection:
		geoms := make([]geom.Geom, len(v.Geoms))
		for i, sub := range v.Geoms {
			geoms[i] = snapLinework(sub, snapPts, tolerance, allowSelfVertices)
		}
		return geom.GeometryCollection{Geoms: geoms, Factory: v.Factory}
	default:
		return g
	}
}

func snapCoords(coords, snapPts []geom.Coordinate, tolerance float64, allowSelfVertices bool) []geom.Coordinate {
	snapper := NewLineStringSnapper(coords, tolerance)
	snapper.SetAllowSnappingToSourceVertices(allowSelfVertices)
	return snapper.SnapTo(snapPts)
}
