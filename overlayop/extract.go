package overlayop

import (
	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/geomgraph"
	"github.com/ctessum/overlay/noding"
)

// taggedString pairs a noded linework string with the seed label its split
// sub-edges should carry, before the EdgeList's own merge-and-accumulate
// logic takes over.
type taggedString struct {
	ss    *noding.SegmentString
	label geomgraph.Label
}

// extractLinework walks g and returns one taggedString per ring or line,
// with holes and shells reoriented so the polygon's interior is always to
// the right of the direction the ring is stored in.
func extractLinework(g geom.Geom, argIndex int) []taggedString {
	var out []taggedString
	var walk func(geom.Geom)
	walk = func(g geom.Geom) {
		switch v := g.(type) {
		case geom.LineString:
			if len(v.Coords) < 2 {
				return
			}
			ss := noding.NewSegmentString(v.Coords, argIndex)
			out = append(out, taggedString{ss, geomgraph.NewLineLabel(argIndex, geom.Boundary)})
		case geom.MultiLineString:
			for _, l := range v.LineStrings {
				walk(l)
			}
		case geom.Polygon:
			out = append(out, ringString(v.Shell, true, argIndex))
			for _, h := range v.Holes {
				out = append(out, ringString(h, false, argIndex))
			}
		case geom.MultiPolygon:
			for _, p := range v.Polys {
				walk(p)
			}
		case geom.GeometryCollection:
			for _, sub := range v.Geoms {
				walk(sub)
			}
		}
	}
	walk(g)
	return out
}

func ringString(ring geom.LinearRing, isShell bool, argIndex int) taggedString {
	coords := orientedRingCoords(ring, isShell)
	ss := noding.NewSegmentString(coords, argIndex)
	return taggedString{ss, geomgraph.NewAreaLabel(argIndex, geom.Boundary, geom.Exterior, geom.Interior)}
}

// orientedRingCoords returns ring's coordinates, reversed if necessary so
// shells wind CW and holes wind CCW.
func orientedRingCoords(ring geom.LinearRing, isShell bool) []geom.Coordinate {
	coords := append([]geom.Coordinate(nil), ring.Coords...)
	ccw := geom.SignedArea(coords) > 0
	wantCCW := !isShell
	if ccw != wantCCW {
		reverseCoords(coords)
	}
	return coords
}

func reverseCoords(coords []geom.Coordinate) {
	for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
		coords[i], coords[j] = coords[j], coords[i]
	}
}

// extractPoints returns every isolated point coordinate in g.
func extractPoints(g geom.Geom) []geom.Coordinate {
	var out []geom.Coordinate
	switch v := g.(type) {
	case geom.Point:
		out = append(out, v.Coordinate)
	case geom.MultiPoint:
		for _, p := range v.Pts {
			out = append(out, p.Coordinate)
		}
	case geom.GeometryCollection:
		for _, sub := range v.Geoms {
			out = append(out, extractPoints(sub)...)
		}
	}
	return out
}
