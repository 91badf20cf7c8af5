package union

import "github.com/ctessum/overlay/geom"

// BufferFunc computes g's buffer at distance. Buffering is an external
// collaborator; the union package never implements it itself, only calls
// out to one when the core overlay's topology fails.
type BufferFunc func(g geom.Geom, distance float64) (geom.Geom, error)

// bufferZero is the hook OverlapUnion and CascadedUnion fall back to on a
// TopologyError. Left nil, the fallback is disabled and the original error
// propagates.
var bufferZero BufferFunc

// SetBufferFunc installs the buffer collaborator used by the buffer-zero
// fallback path.
func SetBufferFunc(f BufferFunc) {
	bufferZero = f
}

// unionBuffer builds a two-element geometry collection of g0 and g1 and
// returns its buffer at distance 0, which often succeeds where
// topology-based overlay fails at the cost of speed and occasional
// robustness loss.
func unionBuffer(g0, g1 geom.Geom, factory *geom.GeometryFactory) (geom.Geom, error) {
	if bufferZero == nil {
		return nil, &geom.ErrInvalidArgument{Msg: "no buffer collaborator installed for the buffer-zero fallback"}
	}
	coll := geom.GeometryCollection{Geoms: []geom.Geom{g0, g1}, Factory: factory}
	return bufferZero(coll, 0)
}
