package cutquote

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyProfile       = errors.New("profile has no edges")
	ErrRadiusMismatch     = errors.New("arc vertices are not equidistant from the center")
	ErrZeroRadius         = errors.New("arc has zero radius")
	ErrMissingCenter      = errors.New("arc has no center")
	ErrClockwiseFrom      = errors.New("arc clockwise start is not one of its vertices")
	ErrUnknownVertex      = errors.New("edge refers to an unknown vertex")
	ErrUnknownEdgeType    = errors.New("unknown edge type")
	ErrNonFinite          = errors.New("coordinate is not finite")
	ErrInvalidDescription = errors.New("invalid profile description")
	ErrInvalidParams      = errors.New("invalid cost parameters")
)

// EdgeError describes a problem with a single edge of a profile.
type EdgeError struct {
	// Index is the position of the edge in traversal order.
	Index int
	// ID is the edge's identifier in the description, if it came from one.
	ID  string
	Err error
}

func (e *EdgeError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("edge %d (id %s): %s", e.Index, e.ID, e.Err)
	}
	return fmt.Sprintf("edge %d: %s", e.Index, e.Err)
}

func (e *EdgeError) Unwrap() error { return e.Err }
