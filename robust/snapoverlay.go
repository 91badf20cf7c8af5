// Package robust wraps the overlay engine with JTS's floating-point
// robustness scaffolding: a snap-overlay strategy that removes common
// coordinate bits and snaps near-coincident vertices before noding, and a
// snap-if-needed wrapper that only pays that cost after a plain overlay
// attempt fails.
package robust

import (
	"math"

	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/geomgraph"
	"github.com/ctessum/overlay/overlayop"
	"github.com/ctessum/overlay/precision"
	"github.com/ctessum/overlay/snap"
)

const fixedSnapFactor = 1e-9

// SnapOverlayOp runs an overlay after removing common coordinate bits from
// both inputs and snapping each to close slivers left by near-coincident
// vertices.
type SnapOverlayOp struct {
	G0, G1  geom.Geom
	Op      geomgraph.OpCode
	Factory *geom.GeometryFactory
}

// NewSnapOverlayOp returns a snap overlay for g0 op g1.
func NewSnapOverlayOp(g0, g1 geom.Geom, op geomgraph.OpCode, factory *geom.GeometryFactory) *SnapOverlayOp {
	return &SnapOverlayOp{G0: g0, G1: g1, Op: op, Factory: factory}
}

// GetResultGeometry computes the snapped overlay.
//
// The ordering matters: common bits are removed first so the snap
// tolerance and the overlay's internal intersection arithmetic both
// operate on coordinates close to the origin; reversing the order changes
// the effective tolerance.
//
// A noding failure that survives the snap is returned as a
// *geom.RobustnessError; other errors are returned unchanged.
func (s *SnapOverlayOp) GetResultGeometry() (geom.Geom, error) {
	tol := snapTolerance(s.G0, s.G1)

	remover := precision.NewCommonBitsRemover()
	remover.Add(s.G0)
	remover.Add(s.G1)
	g0 := remover.RemoveCommonBits(s.G0)
	g1 := remover.RemoveCommonBits(s.G1)

	g0 = snap.NewGeometrySnapper(g0).SnapToSelf(tol)
	g1 = snap.NewGeometrySnapper(g1).SnapTo(g0, tol)

	result, err := overlayop.New(g0, g1, s.Op, s.Factory).GetResultGeometry()
	if err != nil {
		if te, ok := err.(*geom.TopologyError); ok && te.Kind == geom.NodingFailure {
			return nil, &geom.RobustnessError{Msg: te.Error()}
		}
		return nil, err
	}
	return remover.AddCommonBits(result), nil
}

// snapTolerance computes min(tol(g0), tol(g1)), where tol(g) is the larger
// of a size-relative factor and the input's fixed-grid tolerance, if any
//.
func snapTolerance(g0, g1 geom.Geom) float64 {
	return math.Min(tolOf(g0), tolOf(g1))
}

func tolOf(g geom.Geom) float64 {
	sizeTol := geom.Size(g) * fixedSnapFactor
	var gridTol float64
	if f := geomFactory(g); f != nil {
		gridTol = f.PrecisionModel.GridTolerance()
	}
	if gridTol > sizeTol {
		return gridTol
	}
	return sizeTol
}

func geomFactory(g geom.Geom) *geom.GeometryFactory {
	switch v := g.(type) {
	case geom.Point:
		return v.Factory
	case geom.MultiPoint:
		return v.Factory
	case geom.LineString:
		return v.Factory
	case geom.LinearRing:
		return v.Factory
	case geom.MultiLineString:
		return v.Factory
	case geom.Polygon:
		return v.Factory
	case geom.MultiPolygon:
		return v.Factory
	case geom.GeometryCollection:
		return v.Factory
	default:
		return nil
	}
}
