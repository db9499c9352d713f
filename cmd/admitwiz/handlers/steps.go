package handlers

import (
	"fmt"
	"strings"

	"github.com/imamik/admitwiz/internal/config"
	"github.com/imamik/admitwiz/internal/wizard"
)

// Output formats for the steps command.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// Steps prints the steps of a flow.
func Steps(flowPath, output string) error {
	flow, err := loadFlow(flowPath)
	if err != nil {
		return fmt.Errorf("failed to load flow: %w", err)
	}

	switch output {
	case "", OutputTable:
		fmt.Print(renderStepsTable(flow))
		return nil
	case OutputYAML:
		data, err := flow.Marshal()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use %s or %s)", output, OutputTable, OutputYAML)
	}
}

func renderStepsTable(flow *config.Flow) string {
	var b strings.Builder
	opts := flow.WizardOptions()
	steps := flow.WizardSteps()

	b.WriteString(sectionStyle.Render(fmt.Sprintf("Flow: %s", flow.Name)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  %-3s %-10s %-24s %-10s %s\n", "#", "ID", "TITLE", "STATUS", "PROGRESS")

	for i, s := range steps {
		status := wizard.DerivedStatus(steps, wizard.State{Index: 0}, i)
		title := s.Title
		if s.Optional {
			title += " (optional)"
		}
		// Progress once the user reaches this step.
		pct := wizard.ProgressPercentage(len(steps), wizard.State{Index: i})
		fmt.Fprintf(&b, "  %-3d %-10s %-24s %-10s %3.0f%%\n", i+1, s.ID, title, status, pct)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"  back navigation: %t  skip steps: %t  progress: %t  step numbers: %t",
		opts.AllowBackNavigation, opts.AllowSkipSteps, opts.ShowProgress, opts.ShowStepNumbers)))
	b.WriteString("\n")
	return b.String()
}
