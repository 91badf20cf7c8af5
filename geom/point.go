package geom

// Point is a single coordinate.
type Point struct {
	Coordinate
	Factory *GeometryFactory
}

// Envelope gives the (degenerate) bounding box of p.
func (p Point) Envelope() *Envelope { return NewEnvelopePoint(p.Coordinate) }

// Dimension is always 0 for a Point.
func (p Point) Dimension() int { return DimPoint }

// IsEmpty is always false; an empty point-like geometry is represented by
// MultiPoint{} rather than a zero Point.
func (p Point) IsEmpty() bool { return false }

// Points returns []Point{p} to satisfy Puntal.
func (p Point) Points() []Point { return []Point{p} }

// Equals2D reports whether p and p2 have the same coordinate.
func (p Point) Equals2D(p2 Point) bool { return p.Coordinate.Equals2D(p2.Coordinate) }

// MultiPoint is an unordered collection of points.
type MultiPoint struct {
	Pts     []Point
	Factory *GeometryFactory
}

// Envelope gives the bounding box of mp.
func (mp MultiPoint) Envelope() *Envelope {
	e := NewEnvelope()
	for _, p := range mp.Pts {
		e.ExpandToInclude(p.Coordinate)
	}
	return e
}

// Dimension is always 0 for a MultiPoint.
func (mp MultiPoint) Dimension() int { return DimPoint }

// IsEmpty reports whether mp has no points.
func (mp MultiPoint) IsEmpty() bool { return len(mp.Pts) == 0 }

// Points returns mp's points to satisfy Puntal.
func (mp MultiPoint) Points() []Point { return mp.Pts }
