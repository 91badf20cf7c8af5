// Package geomgraph implements the planar-graph primitives JTS's OverlayOp
// builds the overlay on: labels, depths, nodes, edges, directed edges, and
// edge rings.
package geomgraph

import "github.com/ctessum/overlay/geom"

// LabelElement is the location triple (ON, LEFT, RIGHT) one input argument
// contributes to an edge or node label.
type LabelElement struct {
	defined     bool
	On          geom.Location
	Left, Right geom.Location
}

func nullElement() LabelElement { return LabelElement{} }

func lineElement(on geom.Location) LabelElement {
	return LabelElement{defined: true, On: on}
}

func areaElement(on, left, right geom.Location) LabelElement {
	return LabelElement{defined: true, On: on, Left: left, Right: right}
}

// IsNull reports whether this argument does not contribute to the edge.
func (e LabelElement) IsNull() bool { return !e.defined }

// IsArea reports whether this element carries distinct LEFT/RIGHT
// classifications (as opposed to a bare line label).
func (e LabelElement) IsArea() bool { return e.defined && (e.Left != geom.None || e.Right != geom.None) }

func (e LabelElement) flip() LabelElement {
	if !e.defined {
		return e
	}
	return LabelElement{defined: true, On: e.On, Left: e.Right, Right: e.Left}
}

func (e LabelElement) merge(other LabelElement) LabelElement {
	if !other.defined {
		return e
	}
	if !e.defined {
		return other
	}
	out := e
	if out.On == geom.None {
		out.On = other.On
	}
	if out.Left == geom.None {
		out.Left = other.Left
	}
	if out.Right == geom.None {
		out.Right = other.Right
	}
	return out
}

// Label is the pair of LabelElements, one per input argument (0 and 1),
// that JTS attaches to every edge and node.
type Label struct {
	Elt [2]LabelElement
}

// NewLineLabel builds a line label where argument argIndex has location
// on, and the other argument is null.
func NewLineLabel(argIndex int, on geom.Location) Label {
	var l Label
	l.Elt[argIndex] = lineElement(on)
	return l
}

// NewAreaLabel builds an area label where argument argIndex has the given
// ON/LEFT/RIGHT, and the other argument is null.
func NewAreaLabel(argIndex int, on, left, right geom.Location) Label {
	var l Label
	l.Elt[argIndex] = areaElement(on, left, right)
	return l
}

// IsNull reports whether both arguments are null.
func (l Label) IsNull() bool { return l.Elt[0].IsNull() && l.Elt[1].IsNull() }

// IsArea reports whether either argument carries an area (LEFT/RIGHT)
// classification.
func (l Label) IsArea() bool { return l.Elt[0].IsArea() || l.Elt[1].IsArea() }

// IsLine reports whether the label describes a 1D edge for argument i
// (defined but not area).
func (l Label) IsLine(i int) bool { return l.Elt[i].defined && !l.Elt[i].IsArea() }

// Flip returns a copy of l with LEFT/RIGHT swapped on both arguments,
// preserving ON.
func (l Label) Flip() Label {
	return Label{Elt: [2]LabelElement{l.Elt[0].flip(), l.Elt[1].flip()}}
}

// Merge combines l with other, filling in any NONE fields from other
//.
func (l Label) Merge(other Label) Label {
	return Label{Elt: [2]LabelElement{l.Elt[0].merge(other.Elt[0]), l.Elt[1].merge(other.Elt[1])}}
}

// SetOn sets argument i's ON location.
func (l *Label) SetOn(i int, loc geom.Location) { l.Elt[i].defined = true; l.Elt[i].On = loc }

// SetLocations sets argument i's ON/LEFT/RIGHT all at once, used by
// incomplete-node labelling which classifies an isolated
// node's coordinate and propagates the single result to all three.
func (l *Label) SetLocations(i int, loc geom.Location) {
	l.Elt[i] = areaElement(loc, loc, loc)
}

// IsResult promotes BOUNDARY to INTERIOR for both arguments, then applies
// op's predicate.
func IsResult(loc0, loc1 geom.Location, op OpCode) bool {
	loc0 = promote(loc0)
	loc1 = promote(loc1)
	switch op {
	case Intersection:
		return loc0 == geom.Interior && loc1 == geom.Interior
	case Union:
		return loc0 == geom.Interior || loc1 == geom.Interior
	case Difference:
		return loc0 == geom.Interior && loc1 != geom.Interior
	case SymDifference:
		return (loc0 == geom.Interior) != (loc1 == geom.Interior)
	default:
		return false
	}
}

func promote(loc geom.Location) geom.Location {
	if loc == geom.Boundary {
		return geom.Interior
	}
	return loc
}

// OpCode identifies the four Boolean overlay operators.
type OpCode int

const (
	Intersection OpCode = iota
	Union
	Difference
	SymDifference
)
