package noding

import (
	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/index/strtree"
	"github.com/ctessum/overlay/locate"
)

// Noder finds every pairwise segment intersection among a set of
// SegmentStrings and records it on the affected strings, so that a
// subsequent Split call can subdivide them at those points. Candidate
// segment pairs are narrowed with an STR-tree rather than brute force, the
// same index the union package bulk-loads polygons into.
type Noder struct {
	li *locate.LineIntersector
}

// NewNoder returns a Noder ready for self- and cross-noding.
func NewNoder() *Noder {
	return &Noder{li: &locate.LineIntersector{}}
}

// SelfNode computes and records every self-intersection within each of
// strs.
func (n *Noder) SelfNode(strs []*SegmentString) {
	for _, s := range strs {
		n.nodePair(s, s)
	}
}

// CrossNode computes and records every intersection between a and b
//.
func (n *Noder) CrossNode(a, b []*SegmentString) {
	for _, sa := range a {
		for _, sb := range b {
			n.nodePair(sa, sb)
		}
	}
}

func (n *Noder) nodePair(sa, sb *SegmentString) {
	same := sa == sb
	if len(sa.Coords) < 2 || len(sb.Coords) < 2 {
		return
	}

	tree := strtree.New(4)
	for j := 0; j < len(sb.Coords)-1; j++ {
		tree.Insert(geom.NewEnvelopeCoords(sb.Coords[j], sb.Coords[j+1]), j)
	}

	for i := 0; i < len(sa.Coords)-1; i++ {
		env := geom.NewEnvelopeCoords(sa.Coords[i], sa.Coords[i+1])
		for _, item := range tree.Query(env) {
			j := item.(int)
			if same && (j == i || j == i+1 || j+1 == i) {
				// adjacent or identical segments share an endpoint by
				// construction; that is not an intersection to split on.
				continue
			}
			if same && j < i {
				// every unordered pair is visited twice when sa == sb;
				// only process it once.
				continue
			}
			n.li.ComputeIntersection(sa.Coords[i], sa.Coords[i+1], sb.Coords[j], sb.Coords[j+1])
			if !n.li.HasIntersection() {
				continue
			}
			for k := 0; k < n.li.IntersectionCount(); k++ {
				pt := n.li.GetIntersection(k)
				sa.AddIntersection(i, pt)
				sb.AddIntersection(j, pt)
			}
		}
	}
}
