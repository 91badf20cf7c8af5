package geom

import "math"

// Envelope is an axis-aligned bounding box. A NULL envelope (IsNull() true)
// is represented by Min having coordinates greater than Max, the same
// convention the reference geometry package uses for its Bounds type.
type Envelope struct {
	Min, Max Coordinate
}

// NewEnvelope returns an empty (NULL) envelope.
func NewEnvelope() *Envelope {
	return &Envelope{
		Min: Coordinate{X: math.Inf(1), Y: math.Inf(1)},
		Max: Coordinate{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// NewEnvelopePoint returns an envelope containing exactly one point.
func NewEnvelopePoint(c Coordinate) *Envelope {
	return &Envelope{Min: c, Max: c}
}

// NewEnvelopeCoords returns the smallest envelope containing the given
// coordinates.
func NewEnvelopeCoords(coords ...Coordinate) *Envelope {
	e := NewEnvelope()
	for _, c := range coords {
		e.ExpandToInclude(c)
	}
	return e
}

// IsNull reports whether e contains no points.
func (e *Envelope) IsNull() bool {
	return e.Max.X < e.Min.X || e.Max.Y < e.Min.Y
}

// Copy returns a copy of e.
func (e *Envelope) Copy() *Envelope {
	c := *e
	return &c
}

// ExpandToInclude grows e, if necessary, so that it contains c.
func (e *Envelope) ExpandToInclude(c Coordinate) {
	if c.X < e.Min.X {
		e.Min.X = c.X
	}
	if c.X > e.Max.X {
		e.Max.X = c.X
	}
	if c.Y < e.Min.Y {
		e.Min.Y = c.Y
	}
	if c.Y > e.Max.Y {
		e.Max.Y = c.Y
	}
}

// ExpandToIncludeEnvelope grows e, if necessary, so that it contains e2.
func (e *Envelope) ExpandToIncludeEnvelope(e2 *Envelope) {
	if e2 == nil || e2.IsNull() {
		return
	}
	e.ExpandToInclude(e2.Min)
	e.ExpandToInclude(e2.Max)
}

// Intersects reports whether e and e2 share at least one point.
func (e *Envelope) Intersects(e2 *Envelope) bool {
	if e.IsNull() || e2.IsNull() {
		return false
	}
	return e.Min.X <= e2.Max.X && e.Max.X >= e2.Min.X &&
		e.Min.Y <= e2.Max.Y && e.Max.Y >= e2.Min.Y
}

// Intersection returns the overlap of e and e2, or nil if they don't
// intersect.
func (e *Envelope) Intersection(e2 *Envelope) *Envelope {
	if !e.Intersects(e2) {
		return nil
	}
	return &Envelope{
		Min: Coordinate{X: math.Max(e.Min.X, e2.Min.X), Y: math.Max(e.Min.Y, e2.Min.Y)},
		Max: Coordinate{X: math.Min(e.Max.X, e2.Max.X), Y: math.Min(e.Max.Y, e2.Max.Y)},
	}
}

// ContainsCoord reports whether c lies within or on the boundary of e.
func (e *Envelope) ContainsCoord(c Coordinate) bool {
	return c.X >= e.Min.X && c.X <= e.Max.X && c.Y >= e.Min.Y && c.Y <= e.Max.Y
}

// ContainsEnvelope reports whether e2 lies entirely within e.
func (e *Envelope) ContainsEnvelope(e2 *Envelope) bool {
	return e2.Min.X >= e.Min.X && e2.Max.X <= e.Max.X &&
		e2.Min.Y >= e.Min.Y && e2.Max.Y <= e.Max.Y
}

// Area returns the area of e, or 0 for a NULL or degenerate envelope.
func (e *Envelope) Area() float64 {
	if e.IsNull() {
		return 0
	}
	return (e.Max.X - e.Min.X) * (e.Max.Y - e.Min.Y)
}

// Diagonal returns the length of e's diagonal.
func (e *Envelope) Diagonal() float64 {
	if e.IsNull() {
		return 0
	}
	dx := e.Max.X - e.Min.X
	dy := e.Max.Y - e.Min.Y
	return math.Hypot(dx, dy)
}
