package play

import "errors"

var (
	// ErrLastFrame is returned when deleting the only remaining frame.
	ErrLastFrame = errors.New("cannot delete the last frame")
	// ErrNoFrame is returned for frame indexes outside the sequence.
	ErrNoFrame = errors.New("frame index out of range")
	// ErrLoad wraps every failure to decode a persisted play.
	ErrLoad = errors.New("failed to load play")
	// ErrInvalidCourt is returned for unknown court variants.
	ErrInvalidCourt = errors.New("invalid court type")
	// ErrInvalidKind is returned for unknown annotation types.
	ErrInvalidKind = errors.New("invalid line type")
)
