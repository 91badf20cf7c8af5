// Package overlayop drives JTS's OverlayOp algorithm: noding the two inputs
// together, labelling the resulting planar graph, and extracting the
// point, line, and polygon results for one of the four boolean operators.
package overlayop

import (
	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/geomgraph"
	"github.com/ctessum/overlay/locate"
	"github.com/ctessum/overlay/noding"
)

// OverlayOp computes one boolean overlay of g0 and g1. It is one-shot: a
// second call to GetResultGeometry returns geom.ErrInvalidState.
type OverlayOp struct {
	G0, G1  geom.Geom
	Op      geomgraph.OpCode
	Factory *geom.GeometryFactory

	used bool
}

// New returns an OverlayOp ready to compute op over g0, g1.
func New(g0, g1 geom.Geom, op geomgraph.OpCode, factory *geom.GeometryFactory) *OverlayOp {
	return &OverlayOp{G0: g0, G1: g1, Op: op, Factory: factory}
}

// GetResultGeometry runs the overlay and returns the result geometry.
func (o *OverlayOp) GetResultGeometry() (geom.Geom, error) {
	if o.used {
		return nil, &geom.ErrInvalidState{Msg: "OverlayOp.GetResultGeometry called more than once"}
	}
	o.used = true

	graph := geomgraph.NewPlanarGraph()
	graph.CopyPoints(0, extractPoints(o.G0), geom.Interior)
	graph.CopyPoints(1, extractPoints(o.G1), geom.Interior)

	strs0 := extractLinework(o.G0, 0)
	strs1 := extractLinework(o.G1, 1)

	n := noding.NewNoder()
	n.SelfNode(segmentStringsOf(strs0))
	n.SelfNode(segmentStringsOf(strs1))
	n.CrossNode(segmentStringsOf(strs0), segmentStringsOf(strs1))

	edgeList := geomgraph.NewEdgeList()
	var splitCoords [][]geom.Coordinate
	for _, t := range append(append([]taggedString{}, strs0...), strs1...) {
		for _, coords := range t.ss.Split() {
			splitCoords = append(splitCoords, coords)
			edgeList.Add(geomgraph.NewEdge(coords, t.label), t.ss.ArgIndex)
		}
	}

	if err := noding.NewFastNodingValidator().Validate(splitCoords); err != nil {
		return nil, err
	}

	finalEdges := labelFromDepth(edgeList.Edges())
	graph.AddEdges(finalEdges)
	graph.ComputeNodeLabelling()
	classifyIsolatedNodes(graph, o.G0, o.G1)

	markAreaResults(graph, o.Op)
	cancelSymResultPairs(graph)
	markLineAndPointResults(graph, o.Op)

	polys, err := assemblePolygons(graph)
	if err != nil {
		return nil, err
	}
	lines := collectResultLines(graph)
	points := collectResultPoints(graph, o.Op)

	var geomList []geom.Geom
	for _, p := range points {
		geomList = append(geomList, o.Factory.CreatePoint(p))
	}
	for _, l := range lines {
		geomList = append(geomList, o.Factory.CreateLineString(l))
	}
	for _, p := range polys {
		geomList = append(geomList, p)
	}

	if len(geomList) == 0 {
		return o.Factory.CreateEmpty(emptyResultDimension(o.Op, o.G0.Dimension(), o.G1.Dimension())), nil
	}
	return o.Factory.BuildGeometry(geomList), nil
}

func segmentStringsOf(strs []taggedString) []*noding.SegmentString {
	out := make([]*noding.SegmentString, len(strs))
	for i, t := range strs {
		out[i] = t.ss
	}
	return out
}

// labelFromDepth normalizes each edge's depth, derives LEFT/RIGHT from it,
// and swaps in each edge's collapsed-to-line replacement where its depth
// delta is zero.
func labelFromDepth(edges []*geomgraph.Edge) []*geomgraph.Edge {
	for _, e := range edges {
		for i := 0; i < 2; i++ {
			e.Depth.Normalize(i)
			if !e.Depth.IsNull(i) {
				elt := e.Depth.LabelFromDepth(i)
				e.Label.SetOn(i, elt.On)
				e.Label.Elt[i] = elt
			}
		}
	}
	out := make([]*geomgraph.Edge, len(edges))
	for i, e := range edges {
		collapsed := false
		for a := 0; a < 2; a++ {
			if !e.Depth.IsNull(a) && e.Depth.Delta(a) == 0 {
				collapsed = true
			}
		}
		if collapsed {
			out[i] = e.CollapsedEdge()
		} else {
			out[i] = e
		}
	}
	return out
}

// classifyIsolatedNodes resolves node labels for arguments that never
// touched the node through a noded edge, using PointLocator against the
// argument's own original geometry, and propagates the result to every
// incident directed edge. A directed edge that still has a null element
// afterwards (both its end nodes lie on that argument's linework) is
// classified by locating the midpoint of its first segment.
func classifyIsolatedNodes(graph *geomgraph.PlanarGraph, g0, g1 geom.Geom) {
	locator := locate.PointLocator{}
	args := [2]geom.Geom{g0, g1}
	for _, node := range graph.Nodes.Nodes() {
		for i := 0; i < 2; i++ {
			if !node.IsIsolated(i) {
				continue
			}
			loc := locator.Locate(node.Coord, args[i])
			node.Label.SetLocations(i, loc)
			for _, de := range node.Star.Edges() {
				if de.Label.Elt[i].IsNull() {
					de.Label.SetLocations(i, loc)
				}
			}
		}
	}
	for _, de := range graph.DirectedEdges() {
		for i := 0; i < 2; i++ {
			if !de.Label.Elt[i].IsNull() {
				continue
			}
			a, b := de.Edge.Coords[0], de.Edge.Coords[1]
			mid := geom.Coordinate{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
			de.Label.SetLocations(i, locator.Locate(mid, args[i]))
		}
	}
}

// markAreaResults flags directed edges that belong in an area result ring
// and marks their underlying edge as covered so
// it is not also emitted as a line.
func markAreaResults(graph *geomgraph.PlanarGraph, op geomgraph.OpCode) {
	for _, de := range graph.DirectedEdges() {
		label := de.Label
		if de.Edge.Collapsed || !label.IsArea() {
			continue
		}
		if geomgraph.IsResult(label.Elt[0].Right, label.Elt[1].Right, op) {
			de.InResult = true
			de.Edge.Covered = true
		}
	}
}

// cancelSymResultPairs clears both orientations of any edge whose directed
// edge and sym were both flagged InResult by markAreaResults. This happens
// when an edge belongs to only one argument and lies inside the other, so
// classifyIsolatedNodes gives both orientations the same location for the
// other argument, making isResult pass for both orientations; left
// uncancelled, the pair of opposing half-edges corrupts maximal ring
// assembly.
func cancelSymResultPairs(graph *geomgraph.PlanarGraph) {
	for _, de := range graph.DirectedEdges() {
		if de.InResult && de.Sym() != nil && de.Sym().InResult {
			de.InResult = false
			de.Sym().InResult = false
		}
	}
}

// markLineAndPointResults flags edges eligible for line output, including
// the INTERSECTION-only boundary-touch case.
func markLineAndPointResults(graph *geomgraph.PlanarGraph, op geomgraph.OpCode) {
	for _, e := range graph.Edges.Edges() {
		label := e.Label
		isLineType := !label.IsArea() || e.Collapsed
		passes := geomgraph.IsResult(label.Elt[0].On, label.Elt[1].On, op)
		switch {
		case isLineType && passes && !e.Covered:
			e.InResult = true
		case op == geomgraph.Intersection && !e.Collapsed && label.IsArea() && passes:
			e.InResult = true
		}
	}
}

// collectResultLines returns one coordinate sequence per edge flagged for
// line output.
func collectResultLines(graph *geomgraph.PlanarGraph) [][]geom.Coordinate {
	var out [][]geom.Coordinate
	for _, e := range graph.Edges.Edges() {
		if e.InResult {
			out = append(out, e.Coords)
		}
	}
	return out
}

// collectResultPoints returns the coordinates of nodes qualifying for
// point output: no incident result edge, isolated (or the op is
// INTERSECTION), and the node's own label passes isResult.
func collectResultPoints(graph *geomgraph.PlanarGraph, op geomgraph.OpCode) []geom.Coordinate {
	var out []geom.Coordinate
	for _, node := range graph.Nodes.Nodes() {
		incident := false
		for _, de := range node.Star.Edges() {
			if de.InResult || de.Edge.InResult || de.Edge.Covered {
				incident = true
				break
			}
		}
		if incident {
			continue
		}
		if node.Star.Degree() != 0 && op != geomgraph.Intersection {
			continue
		}
		if geomgraph.IsResult(node.Label.Elt[0].On, node.Label.Elt[1].On, op) {
			out = append(out, node.Coord)
		}
	}
	return out
}

// emptyResultDimension picks the atomic empty-result dimension for op, the
// same per-operator rule JTS's OverlayOp.createEmptyResult applies.
func emptyResultDimension(op geomgraph.OpCode, dimA, dimB int) int {
	switch op {
	case geomgraph.Intersection:
		return min(dimA, dimB)
	case geomgraph.Union, geomgraph.SymDifference:
		return max(dimA, dimB)
	case geomgraph.Difference:
		return dimA
	default:
		return geom.DimUnknown
	}
}
