package pipeline

import (
	"errors"
	"fmt"

	"github.com/mfuechec/RoomView/internal/analyzer"
)

// ErrInvalidImage reports an undecodable or too-small input image. Nothing
// runs after this check fails.
var ErrInvalidImage = errors.New("invalid image")

// ErrTimeout reports that the processing budget was exhausted mid-pipeline.
// The invocation is aborted; no partial room list is returned.
var ErrTimeout = errors.New("detection deadline exceeded")

// TimeoutError carries the stage at which the budget ran out and whatever
// characteristics were measured before the abort, for diagnostics. It
// matches errors.Is(err, ErrTimeout).
type TimeoutError struct {
	Stage           string
	Characteristics *analyzer.Characteristics
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("detection deadline exceeded at stage %q", e.Stage)
}

func (e *TimeoutError) Unwrap() error { return ErrTimeout }
