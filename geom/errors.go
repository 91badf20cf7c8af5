package geom

import "fmt"

// TopologyErrorKind distinguishes the sub-kinds of TopologyError this
// module raises: NodingFailure, OrphanHole, and Robustness.
type TopologyErrorKind int

const (
	NodingFailure TopologyErrorKind = iota
	OrphanHole
	Robustness
)

func (k TopologyErrorKind) String() string {
	switch k {
	case NodingFailure:
		return "NodingFailure"
	case OrphanHole:
		return "OrphanHole"
	case Robustness:
		return "Robustness"
	default:
		return "Unknown"
	}
}

// TopologyError reports a structurally invalid intermediate state detected
// during overlay or ring assembly. It carries the coordinate
// at which the problem was detected, when one is available.
type TopologyError struct {
	Kind  TopologyErrorKind
	Coord Coordinate
	HasCoord bool
	Msg   string
}

func (e *TopologyError) Error() string {
	if e.HasCoord {
		return fmt.Sprintf("topology error (%s) at (%g, %g): %s", e.Kind, e.Coord.X, e.Coord.Y, e.Msg)
	}
	return fmt.Sprintf("topology error (%s): %s", e.Kind, e.Msg)
}

// NewNodingFailure builds a TopologyError for a noding failure detected at
// coord.
func NewNodingFailure(coord Coordinate, msg string) *TopologyError {
	return &TopologyError{Kind: NodingFailure, Coord: coord, HasCoord: true, Msg: msg}
}

// NewOrphanHole builds a TopologyError for a hole ring that could not be
// assigned to any shell.
func NewOrphanHole(coord Coordinate) *TopologyError {
	return &TopologyError{Kind: OrphanHole, Coord: coord, HasCoord: true, Msg: "hole could not be assigned to a shell"}
}

// NewRobustnessError builds a TopologyError for a noded edge set that is
// still not properly noded after a snap retry.
func NewRobustnessError(msg string) *TopologyError {
	return &TopologyError{Kind: Robustness, Msg: msg}
}

// RobustnessError is raised when the noding validator still finds interior
// intersections after snapping; it is fatal to the operation.
type RobustnessError struct {
	Msg string
}

func (e *RobustnessError) Error() string { return "robustness error: " + e.Msg }

// ErrInvalidArgument signals an input that is not a recognized geometry
// variant, or a missing factory that can't be derived.
type ErrInvalidArgument struct {
	Msg string
}

func (e *ErrInvalidArgument) Error() string { return "invalid argument: " + e.Msg }

// ErrInvalidState signals that a one-shot object (OverlayOp, CascadedUnion)
// was invoked a second time.
type ErrInvalidState struct {
	Msg string
}

func (e *ErrInvalidState) Error() string { return "invalid state: " + e.Msg }
