package config

import (
	"errors"
	"fmt"

	"github.com/imamik/admitwiz/internal/admission"
	"github.com/imamik/admitwiz/internal/wizard"
)

// Flow validation errors.
var (
	ErrNoSteps       = errors.New("at least one step is required")
	ErrStepIDMissing = errors.New("step id is required")
	ErrDuplicateStep = errors.New("duplicate step id")
	ErrUnknownStep   = errors.New("unknown step id")
)

// Validate checks the flow for errors. Step ids must be admission step ids
// so every step has validation rules and fields.
func (f *Flow) Validate() error {
	if len(f.Steps) == 0 {
		return ErrNoSteps
	}

	seen := make(map[string]bool, len(f.Steps))
	for i, s := range f.Steps {
		if s.ID == "" {
			return fmt.Errorf("steps[%d]: %w", i, ErrStepIDMissing)
		}
		if seen[s.ID] {
			return fmt.Errorf("steps[%d]: %w: %s", i, ErrDuplicateStep, s.ID)
		}
		seen[s.ID] = true

		if !admission.IsStepID(s.ID) {
			return fmt.Errorf("steps[%d]: %w: %s (known: %v)", i, ErrUnknownStep, s.ID, admission.StepIDs())
		}
		if _, err := wizard.ParseStatus(s.Status); err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
	}
	return nil
}
