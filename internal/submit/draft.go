package submit

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imamik/admitwiz/internal/admission"
)

// Draft is an unfinished application saved for later.
type Draft struct {
	Flow        string                 `yaml:"flow"`
	Step        string                 `yaml:"step"`
	SavedAt     time.Time              `yaml:"saved_at"`
	Application *admission.Application `yaml:"application"`
}

// SaveDraft writes a draft to path.
func SaveDraft(path string, d *Draft) error {
	if d.SavedAt.IsZero() {
		d.SavedAt = now().UTC()
	}
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write draft: %w", err)
	}
	return nil
}

// LoadDraft reads a draft from path.
func LoadDraft(path string) (*Draft, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	var d Draft
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	if d.Application == nil {
		d.Application = &admission.Application{}
	}
	return &d, nil
}

// StepIndex returns the position of the draft's step in stepIDs, or 0 when
// the step is not part of the flow.
func (d *Draft) StepIndex(stepIDs []string) int {
	for i, id := range stepIDs {
		if id == d.Step {
			return i
		}
	}
	return 0
}
