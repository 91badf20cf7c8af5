package geomgraph

import "github.com/ctessum/overlay/geom"

// EdgeRing is a cycle of directed edges forming either a shell (CW) or a
// hole (CCW).
type EdgeRing struct {
	edges []*DirectedEdge
}

// Coordinates returns the closed coordinate ring traced by the directed
// edges, in traversal order.
func (r *EdgeRing) Coordinates() []geom.Coordinate {
	if len(r.edges) == 0 {
		return nil
	}
	var coords []geom.Coordinate
	for _, de := range r.edges {
		ec := de.Edge.Coords
		if de.Forward {
			coords = append(coords, ec[:len(ec)-1]...)
			continue
		}
		for k := len(ec) - 1; k > 0; k-- {
			coords = append(coords, ec[k])
		}
	}
	coords = append(coords, r.edges[0].Origin())
	return coords
}

// IsCCW reports whether the ring winds counter-clockwise.
func (r *EdgeRing) IsCCW() bool { return geom.SignedArea(r.Coordinates()) > 0 }

// IsShell reports whether the ring is a shell: JTS's convention that every
// shell winds clockwise and every hole winds counter-clockwise.
func (r *EdgeRing) IsShell() bool { return !r.IsCCW() }

// Envelope returns the ring's bounding box.
func (r *EdgeRing) Envelope() *geom.Envelope { return geom.NewEnvelopeCoords(r.Coordinates()...) }

// Append adds de to the ring's directed-edge sequence.
func (r *EdgeRing) Append(de *DirectedEdge) { r.edges = append(r.edges, de) }

// MaximalEdgeRing is a ring that allows nodes of degree >2 and may
// self-touch.
type MaximalEdgeRing struct {
	EdgeRing
}

// MinimalEdgeRing is an OGC-valid ring: every node has degree <=2 within
// the ring.
type MinimalEdgeRing struct {
	EdgeRing
	Shell *MinimalEdgeRing // the shell this hole belongs to, if this ring is a hole
}

// BuildMaximalRings walks every unvisited, area-labelled, in-result
// directed edge via its Next pointer to form maximal rings. Directed edges
// are marked with the ring they end up in.
func BuildMaximalRings(directedEdges []*DirectedEdge) []*MaximalEdgeRing {
	var rings []*MaximalEdgeRing
	for _, start := range directedEdges {
		if start.Visited || !start.InResult || !start.Label.IsArea() {
			continue
		}
		ring := &MaximalEdgeRing{}
		de := start
		for {
			de.Visited = true
			de.EdgeRing = ring
			ring.edges = append(ring.edges, de)
			next := de.next
			if next == nil {
				break
			}
			de = next
			if de == start {
				break
			}
		}
		rings = append(rings, ring)
	}
	return rings
}

// DirectedEdges returns the ring's directed edges in traversal order.
func (r *MaximalEdgeRing) DirectedEdges() []*DirectedEdge { return r.edges }

// MaxNodeDegree returns the highest number of result directed edges
// sharing a single origin coordinate within the ring, used to decide
// whether the maximal ring needs subdivision.
func (r *MaximalEdgeRing) MaxNodeDegree() int {
	type xy struct{ x, y float64 }
	counts := make(map[xy]int)
	for _, de := range r.edges {
		c := de.Origin()
		counts[xy{c.X, c.Y}]++
	}
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	return max
}

// BuildMinimalRings decomposes r into one or more minimal rings by
// relinking through nextMin and walking each resulting cycle. If r's
// maximum node degree is already <=2, it decomposes trivially into a
// single minimal ring.
func (r *MaximalEdgeRing) BuildMinimalRings() []*MinimalEdgeRing {
	for _, de := range r.edges {
		de.Node.Star.LinkMinimalDirectedEdges(r)
	}
	var rings []*MinimalEdgeRing
	for _, start := range r.edges {
		if start.VisitedMin {
			continue
		}
		ring := &MinimalEdgeRing{}
		de := start
		for {
			de.VisitedMin = true
			de.MinEdgeRing = ring
			ring.edges = append(ring.edges, de)
			next := de.nextMin
			if next == nil {
				break
			}
			de = next
			if de == start {
				break
			}
		}
		if len(ring.edges) > 0 {
			rings = append(rings, ring)
		}
	}
	return rings
}
