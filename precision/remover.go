package precision

import "github.com/ctessum/overlay/geom"

// CommonBitsRemover computes one common coordinate shared by every vertex
// of every geometry added to it, and translates geometries by its negation
// so overlay arithmetic on the
// translated coordinates stays close to the origin. AddCommonBits reverses
// the translation on a result geometry.
type CommonBitsRemover struct {
	commonX, commonY *CommonBits
	common           geom.Coordinate
	resolved         bool
}

// NewCommonBitsRemover returns an empty remover.
func NewCommonBitsRemover() *CommonBitsRemover {
	return &CommonBitsRemover{commonX: NewCommonBits(), commonY: NewCommonBits()}
}

// Add folds every coordinate of g into the running common bits.
func (r *CommonBitsRemover) Add(g geom.Geom) {
	for _, c := range geom.Coordinates(g) {
		r.commonX.Add(c.X)
		r.commonY.Add(c.Y)
	}
	r.resolved = false
}

// CommonCoordinate returns the coordinate every added geometry's vertices
// have shared in their leading mantissa bits.
func (r *CommonBitsRemover) CommonCoordinate() geom.Coordinate {
	if !r.resolved {
		r.common = geom.Coordinate{X: r.commonX.Common(), Y: r.commonY.Common()}
		r.resolved = true
	}
	return r.common
}

// RemoveCommonBits returns a copy of g translated by -CommonCoordinate().
func (r *CommonBitsRemover) RemoveCommonBits(g geom.Geom) geom.Geom {
	c := r.CommonCoordinate()
	return geom.Transform(g, func(p geom.Coordinate) geom.Coordinate {
		return geom.Coordinate{X: p.X - c.X, Y: p.Y - c.Y, Z: p.Z}
	})
}

// AddCommonBits returns a copy of g translated back by +CommonCoordinate(),
// undoing RemoveCommonBits.
func (r *CommonBitsRemover) AddCommonBits(g geom.Geom) geom.Geom {
	c := r.CommonCoordinate()
	return geom.Transform(g, func(p geom.Coordinate) geom.Coordinate {
		return geom.Coordinate{X: p.X + c.X, Y: p.Y + c.Y, Z: p.Z}
	})
}
