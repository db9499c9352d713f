package wizard

import "fmt"

// Status is the display classification of a step.
type Status string

const (
	// StatusPending marks a step after the active one.
	StatusPending Status = "pending"
	// StatusCurrent marks the active step.
	StatusCurrent Status = "current"
	// StatusCompleted marks a step before the active one.
	StatusCompleted Status = "completed"
	// StatusError marks a step the host flagged as failed.
	StatusError Status = "error"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCurrent, StatusCompleted, StatusError:
		return true
	}
	return false
}

// ParseStatus converts a string into a Status. The empty string parses to
// the empty Status, meaning "no explicit override".
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return "", nil
	}
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Step is one stage of a wizard. Steps are declared once by the host and
// never mutated by the wizard.
type Step struct {
	ID          string
	Title       string
	Description string
	// Icon is a renderer-specific icon reference, e.g. "personal" or "review".
	Icon string
	// Status overrides the derived status when non-empty.
	Status   Status
	Optional bool
}

// validateSteps checks the invariants a step list must satisfy before a
// controller can be built on it.
func validateSteps(steps []Step) error {
	if len(steps) == 0 {
		return ErrNoSteps
	}

	seen := make(map[string]int, len(steps))
	for i, s := range steps {
		if s.ID == "" {
			return fmt.Errorf("step %d: %w", i, ErrEmptyStepID)
		}
		if prev, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateStepID, s.ID, prev, i)
		}
		seen[s.ID] = i
		if s.Status != "" && !s.Status.Valid() {
			return fmt.Errorf("step %q: %w", s.ID, ErrInvalidStatus)
		}
	}
	return nil
}
