package geom

// GeometryFactory builds geometries under a shared precision model, and
// assembles heterogeneous result lists into the most specific possible
// type, the same role JTS's GeometryFactory plays for its own overlay and
// union operations.
type GeometryFactory struct {
	PrecisionModel *PrecisionModel
}

// NewGeometryFactory returns a factory using pm, or the default floating
// model if pm is nil.
func NewGeometryFactory(pm *PrecisionModel) *GeometryFactory {
	if pm == nil {
		pm = FloatingPrecisionModel
	}
	return &GeometryFactory{PrecisionModel: pm}
}

func (f *GeometryFactory) CreatePoint(c Coordinate) Point {
	return Point{Coordinate: c, Factory: f}
}

func (f *GeometryFactory) CreateLineString(coords []Coordinate) LineString {
	return LineString{Coords: coords, Factory: f}
}

func (f *GeometryFactory) CreateLinearRing(coords []Coordinate) LinearRing {
	return LinearRing{Coords: coords, Factory: f}
}

func (f *GeometryFactory) CreatePolygon(shell LinearRing, holes []LinearRing) Polygon {
	return Polygon{Shell: shell, Holes: holes, Factory: f}
}

func (f *GeometryFactory) CreateMultiPoint(pts []Point) MultiPoint {
	return MultiPoint{Pts: pts, Factory: f}
}

func (f *GeometryFactory) CreateMultiLineString(lines []LineString) MultiLineString {
	return MultiLineString{LineStrings: lines, Factory: f}
}

func (f *GeometryFactory) CreateMultiPolygon(polys []Polygon) MultiPolygon {
	return MultiPolygon{Polys: polys, Factory: f}
}

func (f *GeometryFactory) CreateGeometryCollection(geoms []Geom) GeometryCollection {
	return GeometryCollection{Geoms: geoms, Factory: f}
}

// CreateEmpty returns the atomic empty geometry of the given dimension,
// used by OverlayOp's and UnaryUnionOp's empty-result rules.
func (f *GeometryFactory) CreateEmpty(dim int) Geom {
	switch dim {
	case DimPoint:
		return f.CreateMultiPoint(nil)
	case DimLine:
		return f.CreateMultiLineString(nil)
	case DimArea:
		return f.CreateMultiPolygon(nil)
	default:
		return f.CreateGeometryCollection(nil)
	}
}

// BuildGeometry assembles geomList into the most specific single geometry
// that can represent it: a single atom if there is exactly one element and
// every element shares a dimension; a Multi* if every element shares a
// dimension but there are several; a GeometryCollection otherwise. An
// empty list yields an empty GeometryCollection.
func (f *GeometryFactory) BuildGeometry(geomList []Geom) Geom {
	if len(geomList) == 0 {
		return f.CreateGeometryCollection(nil)
	}
	isPoint, isLine, isPoly := true, true, true
	for _, g := range geomList {
		switch g.(type) {
		case Point, MultiPoint:
		default:
			isPoint = false
		}
		switch g.(type) {
		case LineString, MultiLineString:
		default:
			isLine = false
		}
		switch g.(type) {
		case Polygon, MultiPolygon:
		default:
			isPoly = false
		}
	}
	if len(geomList) == 1 {
		return geomList[0]
	}
	switch {
	case isPoint:
		var pts []Point
		for _, g := range geomList {
			switch v := g.(type) {
			case Point:
				pts = append(pts, v)
			case MultiPoint:
				pts = append(pts, v.Pts...)
			}
		}
		return f.CreateMultiPoint(pts)
	case isLine:
		var lines []LineString
		for _, g := range geomList {
			switch v := g.(type) {
			case LineString:
				lines = append(lines, v)
			case MultiLineString:
				lines = append(lines, v.LineStrings...)
			}
		}
		return f.CreateMultiLineString(lines)
	case isPoly:
		var polys []Polygon
		for _, g := range geomList {
			switch v := g.(type) {
			case Polygon:
				polys = append(polys, v)
			case MultiPolygon:
				polys = append(polys, v.Polys...)
			}
		}
		return f.CreateMultiPolygon(polys)
	default:
		return f.CreateGeometryCollection(geomList)
	}
}
