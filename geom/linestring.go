package geom

// LineString is an open or closed path of two or more coordinates.
type LineString struct {
	Coords  []Coordinate
	Factory *GeometryFactory
}

// Envelope gives the bounding box of l.
func (l LineString) Envelope() *Envelope { return NewEnvelopeCoords(l.Coords...) }

// Dimension is always 1 for a LineString.
func (l LineString) Dimension() int { return DimLine }

// IsEmpty reports whether l has no coordinates.
func (l LineString) IsEmpty() bool { return len(l.Coords) == 0 }

// Lines returns []LineString{l} to satisfy Lineal.
func (l LineString) Lines() []LineString { return []LineString{l} }

// IsClosed reports whether l's first and last coordinates coincide.
func (l LineString) IsClosed() bool {
	if len(l.Coords) < 2 {
		return false
	}
	return l.Coords[0].Equals2D(l.Coords[len(l.Coords)-1])
}

// LinearRing is a closed LineString with at least 4 coordinates.
type LinearRing struct {
	Coords  []Coordinate
	Factory *GeometryFactory
}

// Envelope gives the bounding box of r.
func (r LinearRing) Envelope() *Envelope { return NewEnvelopeCoords(r.Coords...) }

// Dimension is always 1 for a LinearRing.
func (r LinearRing) Dimension() int { return DimLine }

// IsEmpty reports whether r has no coordinates.
func (r LinearRing) IsEmpty() bool { return len(r.Coords) == 0 }

// IsCCW reports whether r winds counter-clockwise, using the signed-area
// formula (adapted from the reference geometry package's op.area helper).
func (r LinearRing) IsCCW() bool {
	return SignedArea(r.Coords) > 0
}

// SignedArea returns the signed area of a closed coordinate ring: positive
// for counter-clockwise winding, negative for clockwise.
func SignedArea(ring []Coordinate) float64 {
	if len(ring) < 3 {
		return 0
	}
	n := len(ring) - 1 // last coord duplicates the first
	a := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += ring[i].X * ring[j].Y
		a -= ring[j].X * ring[i].Y
	}
	return a / 2
}

// MultiLineString is a collection of LineStrings.
type MultiLineString struct {
	LineStrings []LineString
	Factory     *GeometryFactory
}

// Envelope gives the bounding box of mls.
func (mls MultiLineString) Envelope() *Envelope {
	e := NewEnvelope()
	for _, l := range mls.LineStrings {
		e.ExpandToIncludeEnvelope(l.Envelope())
	}
	return e
}

// Dimension is always 1 for a MultiLineString.
func (mls MultiLineString) Dimension() int { return DimLine }

// IsEmpty reports whether mls has no constituent lines.
func (mls MultiLineString) IsEmpty() bool { return len(mls.LineStrings) == 0 }

// Lines returns mls's lines to satisfy Lineal.
func (mls MultiLineString) Lines() []LineString { return mls.LineStrings }
