package config

import (
	"github.com/imamik/admitwiz/internal/admission"
	"github.com/imamik/admitwiz/internal/wizard"
)

// Flow is the user-facing wizard configuration.
type Flow struct {
	Name    string      `yaml:"name"`
	Steps   []FlowStep  `yaml:"steps"`
	Options FlowOptions `yaml:"options,omitempty"`
}

// FlowStep declares one wizard step.
type FlowStep struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
	// Status is an explicit status override (pending, current, completed, error).
	Status   string `yaml:"status,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
}

// FlowOptions holds navigation options. Nil pointers fall back to defaults.
type FlowOptions struct {
	AllowBackNavigation *bool `yaml:"allow_back_navigation,omitempty"`
	AllowSkipSteps      *bool `yaml:"allow_skip_steps,omitempty"`
	ShowProgress        *bool `yaml:"show_progress,omitempty"`
	ShowStepNumbers     *bool `yaml:"show_step_numbers,omitempty"`
}

// DefaultFlow returns the built-in student admission flow.
func DefaultFlow() *Flow {
	steps := admission.Steps()
	f := &Flow{
		Name:  admission.FlowName,
		Steps: make([]FlowStep, len(steps)),
	}
	for i, s := range steps {
		f.Steps[i] = FlowStep{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Icon:        s.Icon,
			Optional:    s.Optional,
		}
	}
	f.applyDefaults()
	return f
}

// applyDefaults fills unset options and step titles.
func (f *Flow) applyDefaults() {
	def := wizard.DefaultOptions()
	if f.Name == "" {
		f.Name = admission.FlowName
	}
	if f.Options.AllowBackNavigation == nil {
		f.Options.AllowBackNavigation = boolPtr(def.AllowBackNavigation)
	}
	if f.Options.AllowSkipSteps == nil {
		f.Options.AllowSkipSteps = boolPtr(def.AllowSkipSteps)
	}
	if f.Options.ShowProgress == nil {
		f.Options.ShowProgress = boolPtr(def.ShowProgress)
	}
	if f.Options.ShowStepNumbers == nil {
		f.Options.ShowStepNumbers = boolPtr(def.ShowStepNumbers)
	}

	// Steps without a title inherit the built-in one.
	builtin := make(map[string]wizard.Step)
	for _, s := range admission.Steps() {
		builtin[s.ID] = s
	}
	for i := range f.Steps {
		s := &f.Steps[i]
		b, ok := builtin[s.ID]
		if !ok {
			continue
		}
		if s.Title == "" {
			s.Title = b.Title
		}
		if s.Description == "" {
			s.Description = b.Description
		}
		if s.Icon == "" {
			s.Icon = b.Icon
		}
	}
}

// StepIDs returns the step identifiers in flow order.
func (f *Flow) StepIDs() []string {
	ids := make([]string, len(f.Steps))
	for i, s := range f.Steps {
		ids[i] = s.ID
	}
	return ids
}

// WizardSteps converts the flow steps into wizard steps. The flow must have
// been validated.
func (f *Flow) WizardSteps() []wizard.Step {
	out := make([]wizard.Step, len(f.Steps))
	for i, s := range f.Steps {
		out[i] = wizard.Step{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Icon:        s.Icon,
			Status:      wizard.Status(s.Status),
			Optional:    s.Optional,
		}
	}
	return out
}

// WizardOptions converts the flow options into wizard options.
func (f *Flow) WizardOptions() wizard.Options {
	def := wizard.DefaultOptions()
	return wizard.Options{
		AllowBackNavigation: boolOr(f.Options.AllowBackNavigation, def.AllowBackNavigation),
		AllowSkipSteps:      boolOr(f.Options.AllowSkipSteps, def.AllowSkipSteps),
		ShowProgress:        boolOr(f.Options.ShowProgress, def.ShowProgress),
		ShowStepNumbers:     boolOr(f.Options.ShowStepNumbers, def.ShowStepNumbers),
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
