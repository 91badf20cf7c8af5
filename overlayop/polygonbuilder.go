package overlayop

import (
	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/geomgraph"
	"github.com/ctessum/overlay/locate"
)

// assemblePolygons builds polygons from every directed edge marked
// InResult, following JTS's PolygonBuilder: link result edges, build
// maximal rings, split into minimal rings, then assign holes to shells.
func assemblePolygons(graph *geomgraph.PlanarGraph) ([]geom.Polygon, error) {
	graph.LinkResultDirectedEdges()
	maximalRings := geomgraph.BuildMaximalRings(graph.DirectedEdges())

	var shells []*geomgraph.MinimalEdgeRing
	var freeHoles []*geomgraph.MinimalEdgeRing

	for _, mr := range maximalRings {
		if mr.MaxNodeDegree() <= 2 {
			// Already minimal; treat the maximal ring itself as the lone
			// ring in its group.
			classifyGroup(asMinimalRing(mr), &shells, &freeHoles)
			continue
		}
		minimalRings := mr.BuildMinimalRings()
		classifyGroup(minimalRings, &shells, &freeHoles)
	}

	shellByHole, err := assignHoles(shells, freeHoles)
	if err != nil {
		return nil, err
	}

	holesByShell := make(map[*geomgraph.MinimalEdgeRing][]geom.LinearRing)
	for hole, shell := range shellByHole {
		holesByShell[shell] = append(holesByShell[shell], geom.LinearRing{Coords: hole.Coordinates()})
	}

	var polys []geom.Polygon
	for _, shell := range shells {
		polys = append(polys, geom.Polygon{
			Shell: geom.LinearRing{Coords: shell.Coordinates()},
			Holes: holesByShell[shell],
		})
	}
	return polys, nil
}

// asMinimalRing wraps a maximal ring whose node degree is already <=2 as a
// single minimal ring, avoiding the nextMin relinking pass entirely.
func asMinimalRing(mr *geomgraph.MaximalEdgeRing) []*geomgraph.MinimalEdgeRing {
	ring := &geomgraph.MinimalEdgeRing{}
	for _, de := range mr.DirectedEdges() {
		ring.Append(de)
	}
	return []*geomgraph.MinimalEdgeRing{ring}
}

// classifyGroup implements JTS's PolygonBuilder.sortShellsAndHoles: within
// the rings derived from one maximal ring, at most one may be a shell; if
// found, every other ring in the group becomes one of its holes, otherwise
// all are released to
// the free-hole pool.
func classifyGroup(group []*geomgraph.MinimalEdgeRing, shells, freeHoles *[]*geomgraph.MinimalEdgeRing) {
	var shell *geomgraph.MinimalEdgeRing
	for _, r := range group {
		if r.IsShell() {
			shell = r
			break
		}
	}
	if shell == nil {
		*freeHoles = append(*freeHoles, group...)
		return
	}
	*shells = append(*shells, shell)
	for _, r := range group {
		if r != shell {
			r.Shell = shell
			*freeHoles = append(*freeHoles, r)
		}
	}
}

// assignHoles places every hole with its innermost enclosing shell:
// candidate shells are narrowed by envelope containment, the hole must have
// a representative vertex strictly inside the shell's ring, and ties are
// broken by the smallest enclosing envelope.
func assignHoles(shells, freeHoles []*geomgraph.MinimalEdgeRing) (map[*geomgraph.MinimalEdgeRing]*geomgraph.MinimalEdgeRing, error) {
	result := make(map[*geomgraph.MinimalEdgeRing]*geomgraph.MinimalEdgeRing)
	for _, hole := range freeHoles {
		if hole.Shell != nil {
			result[hole] = hole.Shell
			continue
		}
		holeCoords := hole.Coordinates()
		holeEnv := hole.Envelope()
		var best *geomgraph.MinimalEdgeRing
		var bestArea float64
		for _, shell := range shells {
			shellEnv := shell.Envelope()
			if !shellEnv.ContainsEnvelope(holeEnv) {
				continue
			}
			pt := representativePoint(holeCoords, shell.Coordinates())
			if locate.LocateInRing(pt, shell.Coordinates()) != geom.Interior {
				continue
			}
			area := shellEnv.Area()
			if best == nil || area < bestArea {
				best = shell
				bestArea = area
			}
		}
		if best == nil {
			return nil, geom.NewOrphanHole(holeCoords[0])
		}
		result[hole] = best
	}
	return result, nil
}

// representativePoint returns a vertex of hole that is not also a vertex of
// shell, so the point-in-ring test isn't run against a shared boundary
// point.
func representativePoint(hole, shell []geom.Coordinate) geom.Coordinate {
	for _, c := range hole {
		shared := false
		for _, s := range shell {
			if c.Equals2D(s) {
				shared = true
				break
			}
		}
		if !shared {
			return c
		}
	}
	return hole[0]
}
