package union

import (
	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/geomgraph"
	"github.com/ctessum/overlay/overlayop"
)

// UnaryUnionOp dissolves an arbitrary, possibly mixed-dimension, geometry
// collection into its union: points, lines, and polygons are each reduced
// within their own dimension, then composed lines-with-polygons before
// points are folded back in.
type UnaryUnionOp struct {
	Input   []geom.Geom
	Factory *geom.GeometryFactory
}

// NewUnaryUnionOp returns a unary union over input, using factory to
// assemble the result. factory may be nil; one is derived from the input
// if possible.
func NewUnaryUnionOp(input []geom.Geom, factory *geom.GeometryFactory) *UnaryUnionOp {
	return &UnaryUnionOp{Input: input, Factory: factory}
}

// Union computes the dissolved union of u.Input.
func (u *UnaryUnionOp) Union() (geom.Geom, error) {
	var atoms []geom.Geom
	maxDim := geom.DimUnknown
	for _, g := range u.Input {
		as, dim := geom.Flatten(g)
		atoms = append(atoms, as...)
		if dim > maxDim {
			maxDim = dim
		}
	}

	factory := u.Factory
	if factory == nil {
		factory = deriveFactory(u.Input)
	}

	var points []geom.Point
	var lines []geom.LineString
	var polys []geom.Polygon
	for _, a := range atoms {
		switch v := a.(type) {
		case geom.Point:
			points = append(points, v)
		case geom.MultiPoint:
			points = append(points, v.Pts...)
		case geom.LineString:
			lines = append(lines, v)
		case geom.MultiLineString:
			lines = append(lines, v.LineStrings...)
		case geom.Polygon:
			polys = append(polys, v)
		case geom.MultiPolygon:
			polys = append(polys, v.Polys...)
		}
	}

	if len(points) == 0 && len(lines) == 0 && len(polys) == 0 {
		if factory == nil {
			return nil, nil
		}
		if maxDim == geom.DimUnknown {
			return factory.CreateGeometryCollection(nil), nil
		}
		return factory.CreateEmpty(maxDim), nil
	}

	var lineUnion, polyUnion geom.Geom
	var err error
	if len(lines) > 0 {
		lineUnion, err = dissolveLines(lines, factory)
		if err != nil {
			return nil, err
		}
	}
	if len(polys) > 0 {
		polyUnion, err = NewCascadedUnion(polys, factory).Union()
		if err != nil {
			return nil, err
		}
	}

	linesAndPolys, err := unionWithNull(lineUnion, polyUnion, factory)
	if err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return linesAndPolys, nil
	}
	dissolved, err := dissolvePoints(points, factory)
	if err != nil {
		return nil, err
	}
	return pointGeometryUnion(pointsOf(dissolved), linesAndPolys, factory), nil
}

// dissolvePoints unions every point into an empty point geometry, which
// collapses duplicates via the overlay's point handling.
func dissolvePoints(points []geom.Point, factory *geom.GeometryFactory) (geom.Geom, error) {
	multi := factory.CreateMultiPoint(points)
	empty := factory.CreateEmpty(geom.DimPoint)
	return overlayop.New(multi, empty, geomgraph.Union, factory).GetResultGeometry()
}

func pointsOf(g geom.Geom) []geom.Point {
	switch v := g.(type) {
	case geom.Point:
		return []geom.Point{v}
	case geom.MultiPoint:
		return v.Pts
	default:
		return nil
	}
}

// dissolveLines unions every line into an empty line geometry, which
// collapses duplicate and overlapping segments the same way overlay-union
// collapses duplicate points.
func dissolveLines(lines []geom.LineString, factory *geom.GeometryFactory) (geom.Geom, error) {
	multi := factory.CreateMultiLineString(lines)
	empty := factory.CreateEmpty(geom.DimLine)
	return overlayop.New(multi, empty, geomgraph.Union, factory).GetResultGeometry()
}

// unionWithNull tolerates a null side, the same null-tolerant union JTS's
// UnaryUnionOp composes lines and polygons with.
func unionWithNull(a, b geom.Geom, factory *geom.GeometryFactory) (geom.Geom, error) {
	if a == nil && b == nil {
		return nil, nil
	}
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}
	return overlayop.New(a, b, geomgraph.Union, factory).GetResultGeometry()
}

func deriveFactory(geoms []geom.Geom) *geom.GeometryFactory {
	for _, g := range geoms {
		if f := factoryOf(g); f != nil {
			return f
		}
	}
	return nil
}

func factoryOf(g geom.Geom) *geom.GeometryFactory {
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
