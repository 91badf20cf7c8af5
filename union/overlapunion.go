// Package union implements JTS's cascaded polygon union strategy: a
// balanced binary reduction over an STR-tree's hierarchical grouping, with
// each pairwise step partitioned around the two inputs' overlapping
// envelope so spatially disjoint work never touches the core overlay
// engine, plus a dimension-partitioned unary union driver.
package union

import (
	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/geomgraph"
	"github.com/ctessum/overlay/overlayop"
)

type segment struct {
	a, b geom.Coordinate
}

func (s segment) equalsUnordered(o segment) bool {
	return (s.a.Equals2D(o.a) && s.b.Equals2D(o.b)) || (s.a.Equals2D(o.b) && s.b.Equals2D(o.a))
}

// OverlapUnionOp unions two polygonal geometries by restricting the core
// overlay to the components that can possibly share a vertex, and grafting
// in the spatially disjoint remainder unchanged. After
// Union returns, Optimized reports whether that partitioned path was taken;
// it is false when the border-segment safety check rejected the partition
// and Union fell back to a full overlay of the unpartitioned inputs.
type OverlapUnionOp struct {
	G0, G1  geom.Geom
	Factory *geom.GeometryFactory

	Optimized bool
}

// NewOverlapUnionOp returns an overlap union of g0 and g1.
func NewOverlapUnionOp(g0, g1 geom.Geom, factory *geom.GeometryFactory) *OverlapUnionOp {
	return &OverlapUnionOp{G0: g0, G1: g1, Factory: factory}
}

// Union computes the union and records whether the overlap-envelope
// partitioning was used.
func (o *OverlapUnionOp) Union() (geom.Geom, error) {
	g0, g1, factory := o.G0, o.G1, o.Factory
	e0, e1 := g0.Envelope(), g1.Envelope()
	overlapEnv := e0.Intersection(e1)
	if overlapEnv == nil {
		o.Optimized = true
		return combine(g0, g1, factory), nil
	}

	overlap0, disjoint0 := partitionByEnvelope(polygonsOf(g0), overlapEnv)
	overlap1, disjoint1 := partitionByEnvelope(polygonsOf(g1), overlapEnv)

	unionGeom, err := fullUnion(factory.BuildGeometry(toGeoms(overlap0)), factory.BuildGeometry(toGeoms(overlap1)), factory)
	if err != nil {
		return nil, err
	}

	border0 := borderSegments(overlap0, overlapEnv)
	border0 = append(border0, borderSegments(disjoint0, overlapEnv)...)
	border1 := borderSegments(overlap1, overlapEnv)
	border1 = append(border1, borderSegments(disjoint1, overlapEnv)...)
	borderSrc := append(border0, border1...)
	borderResult := borderSegments(polygonsOf(unionGeom), overlapEnv)

	if !sameSegmentSet(borderSrc, borderResult) {
		log.Debug("overlap union border check failed, falling back to full overlay")
		return fullUnion(g0, g1, factory)
	}

	o.Optimized = true
	disjoint := factory.BuildGeometry(append(toGeoms(disjoint0), toGeoms(disjoint1)...))
	return combine(unionGeom, disjoint, factory), nil
}

// OverlapUnion unions g0 and g1 via OverlapUnionOp and reports whether the
// overlap-envelope partitioning path was used.
func OverlapUnion(g0, g1 geom.Geom, factory *geom.GeometryFactory) (result geom.Geom, optimized bool, err error) {
	op := NewOverlapUnionOp(g0, g1, factory)
	result, err = op.Union()
	return result, op.Optimized, err
}

// overlapUnion is the internal entry point used by the cascaded reduction,
// which has no use for the optimized signal itself.
func overlapUnion(g0, g1 geom.Geom, factory *geom.GeometryFactory) (geom.Geom, error) {
	return NewOverlapUnionOp(g0, g1, factory).Union()
}

// fullUnion runs the core overlay, falling back to the buffer-zero trick on
// a structural topology failure.
func fullUnion(g0, g1 geom.Geom, factory *geom.GeometryFactory) (geom.Geom, error) {
	if g0 == nil && g1 == nil {
		return nil, nil
	}
	if g0 == nil {
		return g1, nil
	}
	if g1 == nil {
		return g0, nil
	}
	result, err := overlayop.New(g0, g1, geomgraph.Union, factory).GetResultGeometry()
	if err == nil {
		return result, nil
	}
	if _, ok := err.(*geom.TopologyError); !ok {
		return nil, err
	}
	log.WithFields(map[string]interface{}{"cause": err.Error()}).Warn("union overlay failed, falling back to buffer(0)")
	buffered, bufErr := unionBuffer(g0, g1, factory)
	if bufErr != nil {
		return nil, err
	}
	return buffered, nil
}

func combine(a, b geom.Geom, factory *geom.GeometryFactory) geom.Geom {
	var parts []geom.Geom
	if a != nil && !a.IsEmpty() {
		parts = append(parts, a)
	}
	if b != nil && !b.IsEmpty() {
		parts = append(parts, b)
	}
	return restrictToPolygons(factory.BuildGeometry(parts), factory)
}

func polygonsOf(g geom.Geom) []geom.Polygon {
	if g == nil {
		return nil
	}
	switch v := g.(type) {
	case geom.Polygon:
		return []geom.Polygon{v}
	case geom.MultiPolygon:
		return v.Polys
	default:
		return nil
	}
}

func toGeoms(polys []geom.Polygon) []geom.Geom {
	out := make([]geom.Geom, len(polys))
	for i, p := range polys {
		out[i] = p
	}
	return out
}

func partitionByEnvelope(polys []geom.Polygon, env *geom.Envelope) (overlap, disjoint []geom.Polygon) {
	for _, p := range polys {
		if p.Envelope().Intersects(env) {
			overlap = append(overlap, p)
		} else {
			disjoint = append(disjoint, p)
		}
	}
	return overlap, disjoint
}

// borderSegments extracts every segment of polys that straddles env's
// boundary: one endpoint inside env and the other outside it. A segment
// wholly inside or wholly outside env never crosses the boundary and is
// excluded.
func borderSegments(polys []geom.Polygon, env *geom.Envelope) []segment {
	var out []segment
	collect := func(coords []geom.Coordinate) {
		for i := 0; i < len(coords)-1; i++ {
			a, b := coords[i], coords[i+1]
			if straddlesBoundary(a, b, env) {
				out = append(out, segment{a: a, b: b})
			}
		}
	}
	for _, p := range polys {
		collect(p.Shell.Coords)
		for _, h := range p.Holes {
			collect(h.Coords)
		}
	}
	return out
}

func straddlesBoundary(a, b geom.Coordinate, env *geom.Envelope) bool {
	return env.ContainsCoord(a) != env.ContainsCoord(b)
}

func sameSegmentSet(a, b []segment) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, sa := range a {
		found := false
		for j, sb := range b {
			if used[j] {
				continue
			}
			if sa.equalsUnordered(sb) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// restrictToPolygons discards any non-polygonal artifact that surfaces
// from the overlay, keeping only the polygonal components of g.
func restrictToPolygons(g geom.Geom, factory *geom.GeometryFactory) geom.Geom {
	if g == nil {
		return nil
	}
	polys := polygonsOf(g)
	if gc, ok := g.(geom.GeometryCollection); ok {
		for _, sub := range gc.Geoms {
			polys = append(polys, polygonsOf(sub)...)
		}
	}
	if len(polys) == 0 {
		return factory.CreateEmpty(geom.DimArea)
	}
	if len(polys) == 1 {
		return polys[0]
	}
	return factory.CreateMultiPolygon(polys)
}
