package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/imamik/admitwiz/internal/admission"
	"github.com/imamik/admitwiz/internal/config"
)

// ErrApplicationInvalid is returned when an application fails validation.
var ErrApplicationInvalid = errors.New("application is invalid")

// loadApplication reads an application file (for testing injection).
var loadApplication = admission.LoadFile

// Validate checks an application file against every step of the flow and
// prints the result per step.
func Validate(appPath, flowPath string) error {
	flow, err := loadFlow(flowPath)
	if err != nil {
		return fmt.Errorf("failed to load flow: %w", err)
	}

	app, err := loadApplication(appPath)
	if err != nil {
		return fmt.Errorf("failed to load application: %w", err)
	}

	report, failed := validateSteps(flow, app)
	fmt.Print(report)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d steps failed", ErrApplicationInvalid, failed, len(flow.Steps))
	}
	return nil
}

func validateSteps(flow *config.Flow, app *admission.Application) (string, int) {
	var b strings.Builder
	failed := 0

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Validating %s against %s", app.FullName(), flow.Name)))
	b.WriteString("\n\n")

	for i, s := range flow.Steps {
		fe := admission.Validate(s.ID, app)
		if len(fe) == 0 {
			fmt.Fprintf(&b, "  %s %d. %s\n", titleStyle.Render("[OK]"), i+1, s.Title)
			continue
		}
		if s.Optional {
			fmt.Fprintf(&b, "  %s %d. %s (optional, %d issue(s))\n", dimStyle.Render("[--]"), i+1, s.Title, len(fe))
			continue
		}

		failed++
		fmt.Fprintf(&b, "  %s %d. %s\n", failedStyle.Render("[!!]"), i+1, s.Title)
		for _, e := range fe {
			fmt.Fprintf(&b, "       - %s: %s\n", e.Field, e.Message)
		}
	}

	b.WriteString("\n")
	if failed == 0 {
		b.WriteString(titleStyle.Render("Application is complete."))
	} else {
		b.WriteString(failedStyle.Render(fmt.Sprintf("%d step(s) need attention.", failed)))
	}
	b.WriteString("\n")
	return b.String(), failed
}
