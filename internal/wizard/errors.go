package wizard

import "errors"

// Construction errors for a wizard step list.
var (
	ErrNoSteps         = errors.New("wizard requires at least one step")
	ErrEmptyStepID     = errors.New("step id is required")
	ErrDuplicateStepID = errors.New("duplicate step id")
	ErrInvalidStatus   = errors.New("invalid step status (expected pending, current, completed or error)")
	ErrIndexOutOfRange = errors.New("step index out of range")
)
