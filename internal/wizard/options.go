package wizard

// Options configures navigation and display behaviour of a wizard.
type Options struct {
	// AllowBackNavigation enables Retreat.
	AllowBackNavigation bool
	// AllowSkipSteps lets JumpTo move forward past uncompleted steps.
	AllowSkipSteps bool
	// ShowProgress and ShowStepNumbers are passed through to renderers.
	ShowProgress    bool
	ShowStepNumbers bool
}

// DefaultOptions returns the options used by the admission flow:
// back navigation on, skipping off, progress and step numbers shown.
func DefaultOptions() Options {
	return Options{
		AllowBackNavigation: true,
		AllowSkipSteps:      false,
		ShowProgress:        true,
		ShowStepNumbers:     true,
	}
}
