package union

import (
	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/index/strtree"
)

// CascadedUnion unions a batch of polygons via a balanced binary reduction
// over an STR-tree's hierarchical grouping, concentrating work on
// spatially close inputs so interior vertices cancel early.
// It is one-shot: Union nulls its input slice as it proceeds and a second
// call returns ErrInvalidState.
type CascadedUnion struct {
	Polygons []geom.Polygon
	Factory  *geom.GeometryFactory
	used     bool
}

// NewCascadedUnion returns a cascaded union over polys, using factory to
// assemble the result.
func NewCascadedUnion(polys []geom.Polygon, factory *geom.GeometryFactory) *CascadedUnion {
	return &CascadedUnion{Polygons: polys, Factory: factory}
}

// Union computes the union of every input polygon.
func (c *CascadedUnion) Union() (geom.Geom, error) {
	if c.used {
		return nil, &geom.ErrInvalidState{Msg: "CascadedUnion already consumed"}
	}
	c.used = true

	polys := c.Polygons
	c.Polygons = nil
	if len(polys) == 0 {
		return nil, nil
	}
	if c.Factory == nil {
		c.Factory = polys[0].Factory
	}

	tree := strtree.New(4)
	for _, p := range polys {
		tree.Insert(p.Envelope(), geom.Geom(p))
	}
	items := tree.ItemsTree()

	result, err := unionTree(items, c.Factory)
	if err != nil {
		return nil, err
	}
	return restrictToPolygons(result, c.Factory), nil
}

// unionTree flattens one subtree into a list of geometries, recursing into
// sublists first, then reduces that flat list with binaryUnion.
func unionTree(item interface{}, factory *geom.GeometryFactory) (geom.Geom, error) {
	list, ok := item.([]interface{})
	if !ok {
		return item.(geom.Geom), nil
	}
	geoms := make([]geom.Geom, len(list))
	for i, sub := range list {
		g, err := unionTree(sub, factory)
		if err != nil {
			return nil, err
		}
		geoms[i] = g
	}
	return binaryUnion(geoms, 0, len(geoms), factory)
}

// binaryUnion reduces geoms[start:end] by recursively unioning halves, the
// flattened-binary-tree reduction JTS's CascadedPolygonUnion uses.
func binaryUnion(geoms []geom.Geom, start, end int, factory *geom.GeometryFactory) (geom.Geom, error) {
	switch end - start {
	case 0:
		return nil, nil
	case 1:
		return unionSafe(geoms[start], nil, factory)
	case 2:
		return unionSafe(geoms[start], geoms[start+1], factory)
	default:
		mid := (start + end) / 2
		g0, err := binaryUnion(geoms, start, mid, factory)
		if err != nil {
			return nil, err
		}
		g1, err := binaryUnion(geoms, mid, end, factory)
		if err != nil {
			return nil, err
		}
		return unionSafe(g0, g1, factory)
	}
}

// unionSafe tolerates a null side by returning a copy of the other, and
// never mutates either input.
func unionSafe(a, b geom.Geom, factory *geom.GeometryFactory) (geom.Geom, error) {
	if a == nil && b == nil {
		return nil, nil
	}
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}
	return overlapUnion(a, b, factory)
}
