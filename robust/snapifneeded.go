package robust

import (
	"github.com/ctessum/overlay/geom"
	"github.com/ctessum/overlay/geomgraph"
	"github.com/ctessum/overlay/overlayop"
)

// SnapIfNeededOverlayOp runs a plain overlay and only falls back to the
// snap-and-retry strategy when the plain attempt raises a topology error.
type SnapIfNeededOverlayOp struct {
	G0, G1  geom.Geom
	Op      geomgraph.OpCode
	Factory *geom.GeometryFactory
}

// NewSnapIfNeededOverlayOp returns a snap-if-needed overlay for g0 op g1.
func NewSnapIfNeededOverlayOp(g0, g1 geom.Geom, op geomgraph.OpCode, factory *geom.GeometryFactory) *SnapIfNeededOverlayOp {
	return &SnapIfNeededOverlayOp{G0: g0, G1: g1, Op: op, Factory: factory}
}

// GetResultGeometry tries a plain overlay first. On failure it retries with
// SnapOverlayOp; if the retry also fails, the original error is returned,
// not the retry's.
//
// A result-validity check belongs after the snap retry succeeds, but this
// implementation short-circuits it to valid, matching how the overlay
// engine it was grounded on leaves the equivalent check disabled.
func (s *SnapIfNeededOverlayOp) GetResultGeometry() (geom.Geom, error) {
	result, err := overlayop.New(s.G0, s.G1, s.Op, s.Factory).GetResultGeometry()
	if err == nil {
		return result, nil
	}

	log.WithFields(map[string]interface{}{
		"op":    s.Op,
		"cause": err.Error(),
	}).Debug("plain overlay failed, retrying with snap")

	snapped, snapErr := NewSnapOverlayOp(s.G0, s.G1, s.Op, s.Factory).GetResultGeometry()
	if snapErr != nil {
		log.WithFields(map[string]interface{}{
			"op":    s.Op,
			"cause": snapErr.Error(),
		}).Warn("snap overlay also failed, surfacing original error")
		return nil, err
	}

	const resultIsValid = true
	if !resultIsValid {
		return nil, err
	}
	return snapped, nil
}
