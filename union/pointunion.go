package union

import (
	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/locate"
)

// pointGeometryUnion keeps only the points of pts not already covered by
// other, classified via PointLocator, and combines them with other without
// a further overlay call.
func pointGeometryUnion(pts []geom.Point, other geom.Geom, factory *geom.GeometryFactory) geom.Geom {
	var locator locate.PointLocator
	var keep []geom.Point
	for _, p := range pts {
		if other == nil || locator.Locate(p.Coordinate, other) == geom.Exterior {
			keep = append(keep, p)
		}
	}

	var parts []geom.Geom
	if other != nil && !other.IsEmpty() {
		parts = append(parts, other)
	}
	switch len(keep) {
	case 0:
	case 1:
		parts = append(parts, keep[0])
	default:
		parts = append(parts, factory.CreateMultiPoint(keep))
	}
	return factory.BuildGeometry(parts)
}
