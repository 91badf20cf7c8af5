package geom

// GeometryCollection is a heterogeneous, possibly nested, set of
// geometries.
type GeometryCollection struct {
	Geoms   []Geom
	Factory *GeometryFactory
}

// Envelope gives the bounding box of gc.
func (gc GeometryCollection) Envelope() *Envelope {
	e := NewEnvelope()
	for _, g := range gc.Geoms {
		e.ExpandToIncludeEnvelope(g.Envelope())
	}
	return e
}

// Dimension returns the maximum dimension of gc's constituents, or
// DimUnknown if gc is empty.
func (gc GeometryCollection) Dimension() int {
	max := DimUnknown
	for _, g := range gc.Geoms {
		if d := g.Dimension(); d > max {
			max = d
		}
	}
	return max
}

// IsEmpty reports whether gc has no constituents, or all of them are
// themselves empty.
func (gc GeometryCollection) IsEmpty() bool {
	for _, g := range gc.Geoms {
		if !g.IsEmpty() {
			return false
		}
	}
	return true
}

// Flatten recursively expands nested GeometryCollections into a flat list
// of atomic geometries, recording the maximum
// dimension seen, including that of empty geometries.
func Flatten(g Geom) (atoms []Geom, maxDim int) {
	maxDim = DimUnknown
	var walk func(Geom)
	walk = func(g Geom) {
		if g == nil {
			return
		}
		if gc, ok := g.(GeometryCollection); ok {
			for _, sub := range gc.Geoms {
				walk(sub)
			}
			return
		}
		if d := g.Dimension(); d > maxDim {
			maxDim = d
		}
		if !g.IsEmpty() {
			atoms = append(atoms, g)
		}
	}
	walk(g)
	return atoms, maxDim
}
