// Package overlay implements the overlay and union core of a 2D planar
// geometry library: topological boolean overlay (intersection, union,
// difference, symmetric difference) over a labelled planar graph, a
// robustness wrapper that retries a failed overlay with common-bits
// translation and vertex snapping, and cascaded / overlap-partitioned
// union for batches of polygons and mixed-dimension collections.
package overlay

import (
	"github.com/sirupsen/logrus"

	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/geomgraph"
	"github.com/ctessum/overlay/robust"
	"github.com/ctessum/overlay/union"
)

// OpCode identifies one of the four boolean overlay operators.
type OpCode = geomgraph.OpCode

// The four boolean overlay operators Overlay accepts.
const (
	Intersection  = geomgraph.Intersection
	Union         = geomgraph.Union
	Difference    = geomgraph.Difference
	SymDifference = geomgraph.SymDifference
)

// Overlay computes g0 op g1. It tries a plain overlay first and only pays
// for vertex snapping and common-bits translation if that attempt raises a
// topology error.
func Overlay(g0, g1 geom.Geom, op OpCode, factory *geom.GeometryFactory) (geom.Geom, error) {
	return robust.NewSnapIfNeededOverlayOp(g0, g1, op, factory).GetResultGeometry()
}

// CascadedUnion unions a batch of polygons via a balanced binary reduction
// over an STR-tree, partitioning each pairwise step around the inputs'
// overlapping envelope. A nil or empty input returns a nil geometry.
func CascadedUnion(polys []geom.Polygon, factory *geom.GeometryFactory) (geom.Geom, error) {
	return union.NewCascadedUnion(polys, factory).Union()
}

// UnaryUnion dissolves an arbitrary, possibly mixed-dimension, geometry
// collection into its union. input may be a single geom.Geom (including a
// GeometryCollection, flattened the same as a slice) or a []geom.Geom.
func UnaryUnion(input any, factory *geom.GeometryFactory) (geom.Geom, error) {
	var geoms []geom.Geom
	switch v := input.(type) {
	case []geom.Geom:
		geoms = v
	case geom.Geom:
		geoms = []geom.Geom{v}
	default:
		return nil, &geom.ErrInvalidArgument{Msg: "UnaryUnion requires a geom.Geom or []geom.Geom"}
	}
	return union.NewUnaryUnionOp(geoms, factory).Union()
}

// SetLogger replaces the logger used on the package's recovery paths: the
// snap-and-retry fallback inside Overlay, and the buffer-zero fallback
// inside CascadedUnion and UnaryUnion.
func SetLogger(l logrus.FieldLogger) {
	robust.SetLogger(l)
	union.SetLogger(l)
}

// SetBufferFunc installs the buffer collaborator CascadedUnion and
// UnaryUnion fall back to when the core overlay raises a topology error
// during a pairwise union. Buffering itself is outside this package's
// scope; leaving this unset disables the fallback.
func SetBufferFunc(f union.BufferFunc) {
	union.SetBufferFunc(f)
}
