package geomgraph

import "github.com/ctessum/overlay/geom"

// Edge is an ordered coordinate sequence plus the Label and Depth the
// noding and labelling stages accumulate on it.
type Edge struct {
	Coords     []geom.Coordinate
	Label      Label
	Depth      *Depth
	InResult   bool
	Covered    bool
	Collapsed  bool
	// de holds the pair of DirectedEdges (forward, reverse) once the edge
	// has been added to a PlanarGraph.
	de [2]*DirectedEdge
}

// NewEdge builds an edge from coords with a seed label (the label of the
// first contributing argument; later duplicates are merged in by the
// EdgeList).
func NewEdge(coords []geom.Coordinate, label Label) *Edge {
	return &Edge{Coords: coords, Label: label, Depth: NewDepth()}
}

// IsCollapsed reports whether e degenerates into a line.
func (e *Edge) IsCollapsed() bool { return e.Collapsed }

// IsInResult reports whether e (or its reverse) was selected for the
// overlay result.
func (e *Edge) IsInResult() bool { return e.InResult }

// IsCovered reports whether e is covered by a result area and so should
// not also be emitted as a result line.
func (e *Edge) IsCovered() bool { return e.Covered }

// CollapsedEdge returns the line-labelled edge that stands in for e once
// it has been identified as a dimensional collapse: same coordinates, a
// line label for whichever argument collapsed, using the ON location the
// depth arithmetic produced.
func (e *Edge) CollapsedEdge() *Edge {
	var label Label
	for i := 0; i < 2; i++ {
		if !e.Depth.IsNull(i) && e.Depth.Delta(i) == 0 {
			on := locationFromDepth(e.Depth.GetLeft(i))
			label.Elt[i] = lineElement(on)
		} else {
			label.Elt[i] = e.Label.Elt[i]
		}
	}
	ce := NewEdge(e.Coords, label)
	ce.Collapsed = true
	return ce
}

// Equals reports whether e has the same coordinate sequence as other,
// forward or reversed, and if reversed, whether the match was reversed
//.
func (e *Edge) Equals(other *Edge) (equal, reversed bool) {
	if len(e.Coords) != len(other.Coords) {
		return false, false
	}
	forward := true
	for i := range e.Coords {
		if !e.Coords[i].Equals2D(other.Coords[i]) {
			forward = false
			break
		}
	}
	if forward {
		return true, false
	}
	n := len(e.Coords)
	reverse := true
	for i := range e.Coords {
		if !e.Coords[i].Equals2D(other.Coords[n-1-i]) {
			reverse = false
			break
		}
	}
	return reverse, true
}

func edgeKey(coords []geom.Coordinate) geom.Coordinate {
	// Keyed by the X, Y of the lexicographically smaller endpoint (Z is
	// dropped, as Equals compares in 2D); used only to bucket candidates before
	// the exact Equals comparison, matching the "fast equality index" the
	// reference geometry package's EdgeList provides.
	if len(coords) == 0 {
		return geom.Coordinate{}
	}
	a, b := coords[0], coords[len(coords)-1]
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return geom.Coordinate{X: a.X, Y: a.Y}
}

// EdgeList owns the unique set of Edges built during noding, keyed for
// fast equality lookup by coordinate-sequence.
type EdgeList struct {
	edges  []*Edge
	buckets map[geom.Coordinate][]*Edge
}

// NewEdgeList returns an empty EdgeList.
func NewEdgeList() *EdgeList {
	return &EdgeList{buckets: make(map[geom.Coordinate][]*Edge)}
}

// Add inserts edge into the list, merging it with a matching existing edge
// if one is found: comparing orientations, flipping+merging labels, and
// accumulating depth.
func (el *EdgeList) Add(edge *Edge, argIndex int) *Edge {
	key := edgeKey(edge.Coords)
	for _, existing := range el.buckets[key] {
		equal, reversed := existing.Equals(edge)
		if !equal {
			continue
		}
		label := edge.Label
		if reversed {
			label = label.Flip()
		}
		if existing.Depth.IsNull(argIndex) {
			existing.Depth.AddFromLabelElement(argIndex, existing.Label.Elt[argIndex])
		}
		existing.Depth.AddFromLabelElement(argIndex, label.Elt[argIndex])
		existing.Label = existing.Label.Merge(label)
		return existing
	}
	el.buckets[key] = append(el.buckets[key], edge)
	el.edges = append(el.edges, edge)
	edge.Depth.AddFromLabelElement(argIndex, edge.Label.Elt[argIndex])
	return edge
}

// Edges returns every unique edge in the list.
func (el *EdgeList) Edges() []*Edge { return el.edges }

// FindEqual returns an existing edge equal to the given coordinate
// sequence, or nil.
func (el *EdgeList) FindEqual(coords []geom.Coordinate) *Edge {
	probe := &Edge{Coords: coords}
	for _, existing := range el.buckets[edgeKey(coords)] {
		if equal, _ := existing.Equals(probe); equal {
			return existing
		}
	}
	return nil
}
