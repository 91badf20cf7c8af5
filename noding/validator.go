package noding

import (
	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/index/strtree"
	"github.com/ctessum/overlay/locate"
)

// FastNodingValidator rechecks a set of split edges for residual topology
// problems after noding: an interior-of-segment intersection with a vertex,
// or two interior vertices that coincide. Either one
// raises geom.TopologyError with kind NodingFailure, which the robustness
// wrapper catches to trigger a snap-and-retry.
type FastNodingValidator struct {
	li *locate.LineIntersector
}

// NewFastNodingValidator returns a ready validator.
func NewFastNodingValidator() *FastNodingValidator {
	return &FastNodingValidator{li: &locate.LineIntersector{}}
}

// Validate checks edges, the split sub-edges produced by Noder + Split.
func (v *FastNodingValidator) Validate(edges [][]geom.Coordinate) error {
	if err := v.checkProperIntersections(edges); err != nil {
		return err
	}
	return checkInteriorVertexCollisions(edges)
}

type segRef struct {
	edge, seg int
}

func (v *FastNodingValidator) checkProperIntersections(edges [][]geom.Coordinate) error {
	tree := strtree.New(4)
	for ei, e := range edges {
		for si := 0; si < len(e)-1; si++ {
			tree.Insert(geom.NewEnvelopeCoords(e[si], e[si+1]), segRef{ei, si})
		}
	}
	for ei, e := range edges {
		for si := 0; si < len(e)-1; si++ {
			env := geom.NewEnvelopeCoords(e[si], e[si+1])
			for _, item := range tree.Query(env) {
				other := item.(segRef)
				if other.edge == ei && other.seg == si {
					continue
				}
				o := edges[other.edge]
				v.li.ComputeIntersection(e[si], e[si+1], o[other.seg], o[other.seg+1])
				if !v.li.HasIntersection() {
					continue
				}
				pt := v.li.GetIntersection(0)
				if v.li.IsProper() {
					return geom.NewNodingFailure(pt, "segments cross at a non-vertex point")
				}
				interiorOfFirst := !pt.Equals2D(e[si]) && !pt.Equals2D(e[si+1])
				interiorOfSecond := !pt.Equals2D(o[other.seg]) && !pt.Equals2D(o[other.seg+1])
				if interiorOfFirst || interiorOfSecond {
					return geom.NewNodingFailure(pt, "intersection point is not a vertex of every noded edge through it")
				}
			}
		}
	}
	return nil
}

func checkInteriorVertexCollisions(edges [][]geom.Coordinate) error {
	seen := make(map[geom.Coordinate]bool)
	for _, e := range edges {
		for i := 1; i < len(e)-1; i++ {
			c := geom.Coordinate{X: e[i].X, Y: e[i].Y}
			if seen[c] {
				return geom.NewNodingFailure(c, "two interior vertices coincide")
			}
			seen[c] = true
		}
	}
	return nil
}
