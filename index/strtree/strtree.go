// Package strtree implements JTS's STRtree: a bulk-loading spatial index,
// including the hierarchical ItemsTree() view CascadedUnion recurses over.
// The envelope arithmetic (enlarge, intersect, boundingBox, margin) is
// adapted from the reference geometry package's index/rtree/geom.go.
package strtree

import (
	"math"
	"sort"

	"github.com/ctessum/overlay/geom"
)

const defaultNodeCapacity = 4

// Entry pairs an item with its envelope.
type Entry struct {
	Env  *geom.Envelope
	Item interface{}
}

type node struct {
	env      *geom.Envelope
	entries  []Entry // leaf: items; non-leaf: empty
	children []*node // non-leaf children
	isLeaf   bool
}

// STRtree is a bulk-loaded, read-mostly spatial index over rectangular
// envelopes.
type STRtree struct {
	nodeCapacity int
	entries      []Entry
	root         *node
	built        bool
}

// New returns an STRtree with the given per-node capacity.
func New(nodeCapacity int) *STRtree {
	if nodeCapacity < 2 {
		nodeCapacity = defaultNodeCapacity
	}
	return &STRtree{nodeCapacity: nodeCapacity}
}

// Insert adds an item under envelope env. Must be called before the first
// query or ItemsTree call, which triggers the bulk build.
func (t *STRtree) Insert(env *geom.Envelope, item interface{}) {
	t.entries = append(t.entries, Entry{Env: env, Item: item})
	t.built = false
}

func (t *STRtree) build() {
	if t.built {
		return
	}
	t.built = true
	if len(t.entries) == 0 {
		t.root = &node{env: geom.NewEnvelope(), isLeaf: true}
		return
	}
	leaves := make([]*node, len(t.entries))
	for i, e := range t.entries {
		leaves[i] = &node{env: e.Env, entries: []Entry{e}, isLeaf: true}
	}
	t.root = buildLevel(leaves, t.nodeCapacity)
}

// buildLevel packs nodes into a balanced STR tree using a slice-by-x,
// slice-by-y packing at each level, the classic STR-tree bulk-load.
func buildLevel(nodes []*node, capacity int) *node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	for len(nodes) > 1 {
		nodes = packLevel(nodes, capacity)
	}
	return nodes[0]
}

func packLevel(nodes []*node, capacity int) []*node {
	numParents := int(math.Ceil(float64(len(nodes)) / float64(capacity)))
	numSlices := int(math.Ceil(math.Sqrt(float64(numParents))))
	if numSlices < 1 {
		numSlices = 1
	}
	sliceCapacity := numSlices * capacity

	sorted := append([]*node{}, nodes...)
	sort.Slice(sorted, func(i, j int) bool {
		return centerX(sorted[i].env) < centerX(sorted[j].env)
	})

	var parents []*node
	for i := 0; i < len(sorted); i += sliceCapacity {
		end := i + sliceCapacity
		if end > len(sorted) {
			end = len(sorted)
		}
		slice := sorted[i:end]
		sort.Slice(slice, func(a, b int) bool {
			return centerY(slice[a].env) < centerY(slice[b].env)
		})
		for j := 0; j < len(slice); j += capacity {
			jend := j + capacity
			if jend > len(slice) {
				jend = len(slice)
			}
			group := slice[j:jend]
			parents = append(parents, makeParent(group))
		}
	}
	return parents
}

func makeParent(children []*node) *node {
	env := geom.NewEnvelope()
	for _, c := range children {
		env.ExpandToIncludeEnvelope(c.env)
	}
	if len(children) == 1 {
		return children[0]
	}
	return &node{env: env, children: children, isLeaf: false}
}

func centerX(e *geom.Envelope) float64 { return (e.Min.X + e.Max.X) / 2 }
func centerY(e *geom.Envelope) float64 { return (e.Min.Y + e.Max.Y) / 2 }

// Query returns every item whose envelope intersects env.
func (t *STRtree) Query(env *geom.Envelope) []interface{} {
	t.build()
	var out []interface{}
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil || !n.env.Intersects(env) {
			return
		}
		if n.isLeaf {
			for _, e := range n.entries {
				if e.Env.Intersects(env) {
					out = append(out, e.Item)
				}
			}
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
	return out
}

// ItemsTree returns a nested-list view of the tree: each level is either a
// leaf item (wrapped with no children) or a sublist reflecting one
// internal node's children, exactly the shape CascadedUnion's unionTree
// recurses over.
func (t *STRtree) ItemsTree() []interface{} {
	t.build()
	if t.root == nil {
		return nil
	}
	result := itemsTreeNode(t.root)
	if result == nil {
		return nil
	}
	if list, ok := result.([]interface{}); ok {
		return list
	}
	return []interface{}{result}
}

func itemsTreeNode(n *node) interface{} {
	if n.isLeaf {
		if len(n.entries) == 0 {
			return nil
		}
		if len(n.entries) == 1 {
			return n.entries[0].Item
		}
		out := make([]interface{}, len(n.entries))
		for i, e := range n.entries {
			out[i] = e.Item
		}
		return out
	}
	var out []interface{}
	for _, c := range n.children {
		sub := itemsTreeNode(c)
		if sub != nil {
			out = append(out, sub)
		}
	}
	return out
}

// Size returns the number of items inserted.
func (t *STRtree) Size() int { return len(t.entries) }
