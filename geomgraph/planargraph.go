package geomgraph

import "github.com/ctessum/overlay/geom"

// PlanarGraph owns the nodes, edges, and directed-edge pairs built for a
// single overlay invocation. Its lifetime is scoped to one
// OverlayOp call; nothing in it is shared across invocations.
type PlanarGraph struct {
	Nodes *NodeMap
	Edges *EdgeList

	directedEdges []*DirectedEdge
}

// NewPlanarGraph returns an empty graph.
func NewPlanarGraph() *PlanarGraph {
	return &PlanarGraph{Nodes: NewNodeMap(), Edges: NewEdgeList()}
}

// AddEdges links every edge in the list to the graph: builds its directed
// edge pair, attaches each directed edge to its origin node's star, and
// registers the edge.
func (g *PlanarGraph) AddEdges(edges []*Edge) {
	for _, e := range edges {
		fwd, rev := makeEdgePair(e)
		g.directedEdges = append(g.directedEdges, fwd, rev)

		startNode := g.Nodes.AddNode(e.Coords[0])
		endNode := g.Nodes.AddNode(e.Coords[len(e.Coords)-1])

		fwd.Node = startNode
		rev.Node = endNode

		startNode.Star.Add(fwd)
		endNode.Star.Add(rev)
	}
}

// DirectedEdges returns every directed edge in the graph.
func (g *PlanarGraph) DirectedEdges() []*DirectedEdge { return g.directedEdges }

// ComputeNodeLabelling recomputes every node's label from its incident
// star.
func (g *PlanarGraph) ComputeNodeLabelling() {
	for _, n := range g.Nodes.Nodes() {
		n.ComputeLabelling()
	}
}

// LinkResultDirectedEdges runs DirectedEdgeStar.LinkResultDirectedEdges at
// every node.
func (g *PlanarGraph) LinkResultDirectedEdges() {
	for _, n := range g.Nodes.Nodes() {
		n.Star.LinkResultDirectedEdges()
	}
}

// CopyPoints inserts a node for every coordinate of g's own geometry into
// the graph, tagged with argIndex's original-location label, protecting
// the boundary determination rule for isolated points.
func (g *PlanarGraph) CopyPoints(argIndex int, coords []geom.Coordinate, loc geom.Location) {
	for _, c := range coords {
		n := g.Nodes.AddNode(c)
		n.MergeLabel(NewAreaLabel(argIndex, loc, loc, loc))
	}
}
