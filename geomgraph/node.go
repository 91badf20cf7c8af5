package geomgraph

import "github.com/ctessum/overlay/geom"

// Node is a point where edges meet.
type Node struct {
	Coord geom.Coordinate
	Star  *DirectedEdgeStar
	Label Label
}

// NewNode returns a Node at coord with an empty star.
func NewNode(coord geom.Coordinate) *Node {
	return &Node{Coord: coord, Star: &DirectedEdgeStar{}}
}

// MergeLabel folds other into n's label, used for copy-node seeding of
// isolated-point labels.
func (n *Node) MergeLabel(other Label) {
	n.Label = n.Label.Merge(other)
}

// ComputeLabelling recomputes n's label from its incident directed edges
//.
func (n *Node) ComputeLabelling() {
	n.Label = n.Label.Merge(n.Star.ComputeLabelling())
}

// IsIsolated reports whether argument i has no defined label on n — i.e.
// n was never visited by a noded edge of that argument and must be
// classified with PointLocator.
func (n *Node) IsIsolated(i int) bool { return n.Label.Elt[i].IsNull() }

// NodeMap keys Nodes by coordinate, matching PlanarGraph.nodes.
type NodeMap struct {
	nodes map[geom.Coordinate]*Node
	order []geom.Coordinate
}

// NewNodeMap returns an empty NodeMap.
func NewNodeMap() *NodeMap {
	return &NodeMap{nodes: make(map[geom.Coordinate]*Node)}
}

// AddNode returns the existing Node at coord, or creates and inserts one.
func (m *NodeMap) AddNode(coord geom.Coordinate) *Node {
	key := geom.Coordinate{X: coord.X, Y: coord.Y}
	if n, ok := m.nodes[key]; ok {
		return n
	}
	n := NewNode(key)
	m.nodes[key] = n
	m.order = append(m.order, key)
	return n
}

// Find returns the Node at coord, or nil.
func (m *NodeMap) Find(coord geom.Coordinate) *Node {
	return m.nodes[geom.Coordinate{X: coord.X, Y: coord.Y}]
}

// Nodes returns every node, in insertion order (for deterministic
// iteration during labelling and result extraction).
func (m *NodeMap) Nodes() []*Node {
	out := make([]*Node, len(m.order))
	for i, c := range m.order {
		out[i] = m.nodes[c]
	}
	return out
}
