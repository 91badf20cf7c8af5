package geom

// Transform returns a copy of g with every coordinate replaced by f(c).
// Used by the robustness scaffolding (common-bits translation, vertex
// snapping) to rewrite a geometry's coordinates without touching its
// structure.
func Transform(g Geom, f func(Coordinate) Coordinate) Geom {
	switch v := g.(type) {
	case Point:
		return Point{Coordinate: f(v.Coordinate), Factory: v.Factory}
	case MultiPoint:
		pts := make([]Point, len(v.Pts))
		for i, p := range v.Pts {
			pts[i] = Point{Coordinate: f(p.Coordinate), Factory: p.Factory}
		}
		return MultiPoint{Pts: pts, Factory: v.Factory}
	case LineString:
		return LineString{Coords: transformCoords(v.Coords, f), Factory: v.Factory}
	case LinearRing:
		return LinearRing{Coords: transformCoords(v.Coords, f), Factory: v.Factory}
	case MultiLineString:
		lines := make([]LineString, len(v.LineStrings))
		for i, l := range v.LineStrings {
			lines[i] = LineString{Coords: transformCoords(l.Coords, f), Factory: l.Factory}
		}
		return MultiLineString{LineStrings: lines, Factory: v.Factory}
	case Polygon:
		shell := LinearRing{Coords: transformCoords(v.Shell.Coords, f), Factory: v.Shell.Factory}
		holes := make([]LinearRing, len(v.Holes))
		for i, h := range v.Holes {
			holes[i] = LinearRing{Coords: transformCoords(h.Coords, f), Factory: h.Factory}
		}
		return Polygon{Shell: shell, Holes: holes, Factory: v.Factory}
	case MultiPolygon:
		polys := make([]Polygon, len(v.Polys))
		for i, p := range v.Polys {
			polys[i] = Transform(p, f).(Polygon)
		}
		return MultiPolygon{Polys: polys, Factory: v.Factory}
	case GeometryCollection:
		geoms := make([]Geom, len(v.Geoms))
		for i, sub := range v.Geoms {
			geoms[i] = Transform(sub, f)
		}
		return GeometryCollection{Geoms: geoms, Factory: v.Factory}
	default:
		return g
	}
}

func transformCoords(coords []Coordinate, f func(Coordinate) Coordinate) []Coordinate {
	out := make([]Coordinate, len(coords))
	for i, c := range coords {
		out[i] = f(c)
	}
	return out
}

// Coordinates returns every coordinate in g, including duplicated ring
// closing points, in traversal order.
func Coordinates(g Geom) []Coordinate {
	var out []Coordinate
	switch v := g.(type) {
	case Point:
		out = append(out, v.Coordinate)
	case MultiPoint:
		for _, p := range v.Pts {
			out = append(out, p.Coordinate)
		}
	case LineString:
		out = append(out, v.Coords...)
	case LinearRing:
		out = append(out, v.Coords...)
	case MultiLineString:
		for _, l := range v.LineStrings {
			out = append(out, l.Coords...)
		}
	case Polygon:
		out = append(out, v.Shell.Coords...)
		for _, h := range v.Holes {
			out = append(out, h.Coords...)
		}
	case MultiPolygon:
		for _, p := range v.Polys {
			out = append(out, Coordinates(p)...)
		}
	case GeometryCollection:
		for _, sub := range v.Geoms {
			out = append(out, Coordinates(sub)...)
		}
	}
	return out
}

// Size returns the diagonal length of g's envelope, the length scale a
// snap-tolerance formula derives its magnitude from.
func Size(g Geom) float64 {
	return g.Envelope().Diagonal()
}
