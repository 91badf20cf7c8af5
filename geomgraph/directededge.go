package geomgraph

import (
	"math"
	"sort"

	"github.com/ctessum/overlay/geom"
)

// DirectedEdge is one of the two orientations of an Edge.
// de.Sym().Sym() == de always holds.
type DirectedEdge struct {
	Edge    *Edge
	Forward bool // true if this orientation walks Edge.Coords start-to-end

	sym  *DirectedEdge
	next *DirectedEdge // next directed edge around the origin node, CCW

	nextMin *DirectedEdge // successor within a minimal ring

	Node *Node

	Label Label // Edge's label, oriented for this directed edge

	EdgeRing    *MaximalEdgeRing
	MinEdgeRing *MinimalEdgeRing

	InResult bool
	Visited  bool
	VisitedMin bool
}

// Origin returns the coordinate this directed edge starts at.
func (de *DirectedEdge) Origin() geom.Coordinate {
	if de.Forward {
		return de.Edge.Coords[0]
	}
	return de.Edge.Coords[len(de.Edge.Coords)-1]
}

// Direction returns the second coordinate along this directed edge,
// used for CCW angle sorting at a node.
func (de *DirectedEdge) Direction() geom.Coordinate {
	if de.Forward {
		return de.Edge.Coords[1]
	}
	return de.Edge.Coords[len(de.Edge.Coords)-2]
}

// Sym returns the opposite-orientation DirectedEdge for the same Edge.
func (de *DirectedEdge) Sym() *DirectedEdge { return de.sym }

// Next returns the next directed edge around de's origin node in CCW
// order.
func (de *DirectedEdge) Next() *DirectedEdge { return de.next }

// makeEdgePair builds the two complementary DirectedEdges for e and wires
// their Sym pointers.
func makeEdgePair(e *Edge) (fwd, rev *DirectedEdge) {
	fwd = &DirectedEdge{Edge: e, Forward: true, Label: e.Label}
	rev = &DirectedEdge{Edge: e, Forward: false, Label: e.Label.Flip()}
	fwd.sym = rev
	rev.sym = fwd
	e.de[0] = fwd
	e.de[1] = rev
	return fwd, rev
}

// angle returns the azimuth, in [0, 2π), from origin to dir — used to sort
// a node's directed edges into CCW order.
func angle(origin, dir geom.Coordinate) float64 {
	a := math.Atan2(dir.Y-origin.Y, dir.X-origin.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// DirectedEdgeStar holds every DirectedEdge that originates at one Node,
// sorted by outgoing azimuth.
type DirectedEdgeStar struct {
	edges []*DirectedEdge
	label Label
}

// Add inserts de into the star and re-sorts by azimuth.
func (s *DirectedEdgeStar) Add(de *DirectedEdge) {
	s.edges = append(s.edges, de)
	sort.Slice(s.edges, func(i, j int) bool {
		return angle(s.edges[i].Origin(), s.edges[i].Direction()) <
			angle(s.edges[j].Origin(), s.edges[j].Direction())
	})
}

// Edges returns the star's directed edges in CCW order.
func (s *DirectedEdgeStar) Edges() []*DirectedEdge { return s.edges }

// Degree returns the number of directed edges in the star.
func (s *DirectedEdgeStar) Degree() int { return len(s.edges) }

// ComputeLabelling merges the labels of every directed edge (and its sym,
// for arguments where the directed edge's own label is null) into the
// star's label, writes the merged-with-sym element back onto each directed
// edge so a later isolated-node pass never overwrites a label the star
// already completed, then stores the merged label in the star and returns
// it; Node.ComputeLabelling merges it into the node's own label.
func (s *DirectedEdgeStar) ComputeLabelling() Label {
	var merged Label
	for _, de := range s.edges {
		l := de.Label
		for i := 0; i < 2; i++ {
			if l.Elt[i].IsNull() && de.sym != nil {
				l.Elt[i] = de.sym.Label.Elt[i]
			}
		}
		de.Label = l
		merged = merged.Merge(l)
	}
	s.label = merged
	return merged
}

// Label returns the star's merged label.
func (s *DirectedEdgeStar) Label() Label { return s.label }

// LinkResultDirectedEdges pairs each incoming result directed edge with
// the next outgoing result directed edge in CCW order around the star,
// giving every result directed edge an unambiguous ring successor
//.
func (s *DirectedEdgeStar) LinkResultDirectedEdges() {
	n := len(s.edges)
	if n == 0 {
		return
	}
	// Find indices of directed edges leaving this node that are in the
	// result (outgoing candidates) to pair against each incoming result
	// edge (an incoming edge's sym is the outgoing edge that starts here).
	firstOutIdx := -1
	for i, de := range s.edges {
		if de.InResult {
			firstOutIdx = i
			break
		}
	}
	if firstOutIdx < 0 {
		return
	}
	// The sym of the star's i'th (outgoing) directed edge is the edge that
	// arrives at this node along the same line; when that incoming edge is
	// in the result, link it to the next outgoing result edge in CCW order.
	for i := range s.edges {
		in := s.edges[i].sym
		if in == nil || !in.InResult {
			continue
		}
		// next outgoing result edge after i, cyclically
		for k := 1; k <= n; k++ {
			j := (i + k) % n
			if s.edges[j].InResult {
				in.next = s.edges[j]
				break
			}
		}
	}
}

// LinkMinimalDirectedEdges re-links the star's result directed edges for
// minimal-ring traversal: every node visited degree-2 within the subset of
// result edges gets a single unambiguous nextMin successor.
func (s *DirectedEdgeStar) LinkMinimalDirectedEdges(ring *MaximalEdgeRing) {
	n := len(s.edges)
	for i := range s.edges {
		in := s.edges[i].sym
		if in == nil || !in.InResult || in.EdgeRing != ring {
			continue
		}
		for k := 1; k <= n; k++ {
			j := (i + k) % n
			if s.edges[j].InResult && s.edges[j].EdgeRing == ring {
				in.nextMin = s.edges[j]
				break
			}
		}
	}
}
