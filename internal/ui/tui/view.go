package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/admitwiz/internal/admission"
	"github.com/imamik/admitwiz/internal/wizard"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

func renderView(m Model) string {
	var b strings.Builder
	v := m.ctrl.Snapshot()

	renderHeader(&b, m, v)

	if v.Options.ShowProgress {
		renderProgressBar(&b, m, v)
	}

	renderStepStrip(&b, v)
	renderStepHeading(&b, v)

	if err := m.activeError(); err != nil {
		renderErrorBanner(&b, err)
	}

	renderFields(&b, m)

	if m.ctrl.CurrentStep().ID == admission.StepReview {
		renderSummary(&b, m.app)
	}

	renderFooter(&b, m, v)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model, v wizard.View) {
	b.WriteString(titleStyle.Render(fmt.Sprintf("admitwiz: %s", m.FlowName)))
	b.WriteString(" ")
	if v.Last {
		b.WriteString(readyStyle.Render("Ready to submit"))
	} else {
		b.WriteString(subtitleStyle.Render(v.Label()))
	}
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, m Model, v wizard.View) {
	barWidth := 40
	if m.Width > 0 && m.Width < 80 {
		barWidth = m.Width - 30
		if barWidth < 10 {
			barWidth = 10
		}
	}
	filled := int(float64(barWidth) * v.Percent / 100)
	if filled > barWidth {
		filled = barWidth
	}

	bar := progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))

	fmt.Fprintf(b, "  %s %s  %d%% Complete\n", bar, v.Label(), v.RoundedPercent())
}

func renderStepStrip(b *strings.Builder, v wizard.View) {
	b.WriteString(sectionStyle.Render("  Steps"))
	b.WriteString("\n")

	for _, s := range v.Steps {
		status := s.Status
		if s.Err != nil {
			status = wizard.StatusError
		}
		icon, style := statusIcon(status)

		marker := s.Icon
		if v.Options.ShowStepNumbers || marker == "" {
			marker = strconv.Itoa(s.Number)
		}

		title := s.Title
		if s.Clickable && s.Index != v.Current {
			title += dimStyle.Render(fmt.Sprintf(" (alt+%d)", s.Number))
		} else if !s.Clickable {
			title = dimStyle.Render(title)
		}
		if s.Optional {
			title += " " + warningStyle.Render("Optional")
		}

		fmt.Fprintf(b, "  %s %s %s\n", style(icon), marker, title)
	}
}

func renderStepHeading(b *strings.Builder, v wizard.View) {
	cur := v.Steps[v.Current]
	b.WriteString(sectionStyle.Render("  " + cur.Title))
	b.WriteString("\n")
	if cur.Description != "" {
		b.WriteString(subtitleStyle.Render("  " + cur.Description))
		b.WriteString("\n")
	}
}

func renderErrorBanner(b *strings.Builder, err error) {
	lines := []string{failedStyle.Render("Please fix the following:")}
	if fe := fieldErrorsOf(err); len(fe) > 0 {
		for _, e := range fe {
			lines = append(lines, "- "+e.Message)
		}
	} else {
		lines = append(lines, "- "+err.Error())
	}
	b.WriteString(bannerStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
}

func renderFields(b *strings.Builder, m Model) {
	fe := m.fieldErrors()
	for i, f := range m.fields {
		prefix := "  "
		if i == m.focus {
			prefix = activeStyle.Render(focusMark)
		}

		label := f.Label
		if f.Required {
			label += " *"
		}

		fmt.Fprintf(b, "\n%s%s\n", prefix, label)
		fmt.Fprintf(b, "    %s\n", fieldValue(m, i, f))

		if msg, ok := fe.Get(f.Key); ok {
			fmt.Fprintf(b, "    %s\n", failedStyle.Render(msg))
		} else if f.Hint != "" && i == m.focus {
			fmt.Fprintf(b, "    %s\n", dimStyle.Render(f.Hint))
		}
	}
}

func fieldValue(m Model, i int, f admission.Field) string {
	switch f.Kind {
	case admission.KindSelect:
		label := admission.Label(f.Options, f.Get(m.app))
		if label == "" {
			label = dimStyle.Render("Select...")
		}
		return "< " + label + " >"
	case admission.KindToggle:
		if on, _ := strconv.ParseBool(f.Get(m.app)); on {
			return readyStyle.Render("[x]")
		}
		return "[ ]"
	default:
		return m.inputs[i].View()
	}
}

func renderSummary(b *strings.Builder, app *admission.Application) {
	b.WriteString(sectionStyle.Render("  Summary"))
	b.WriteString("\n")
	for _, sec := range admission.Summary(app) {
		fmt.Fprintf(b, "  %s\n", activeStyle.Render(sec.Title))
		for _, line := range sec.Lines {
			fmt.Fprintf(b, "    %s\n", line)
		}
	}
}

func renderFooter(b *strings.Builder, m Model, v wizard.View) {
	parts := []string{"tab: next field"}
	if v.Last {
		parts = append(parts, "ctrl+n: submit")
	} else {
		parts = append(parts, "ctrl+n: next")
	}
	if v.Options.AllowBackNavigation && !v.First {
		parts = append(parts, "ctrl+p: back")
	}
	if v.Steps[v.Current].Optional {
		parts = append(parts, "ctrl+k: skip")
	}
	if m.saveDraft != nil {
		parts = append(parts, "ctrl+s: save draft")
	}
	parts = append(parts, "esc: quit")

	if m.notice != "" {
		b.WriteString("\n  " + warningStyle.Render(m.notice) + "\n")
	}
	b.WriteString(footerStyle.Render("  " + strings.Join(parts, "  |  ")))
	b.WriteString("\n")
}

// Helper functions

func statusIcon(s wizard.Status) (string, styleFunc) {
	switch s {
	case wizard.StatusCompleted:
		return checkMark, sf(readyStyle)
	case wizard.StatusError:
		return crossMark, sf(failedStyle)
	case wizard.StatusCurrent:
		return currentMark, sf(activeStyle)
	default:
		return pendingMark, sf(dimStyle)
	}
}

func fieldErrorsOf(err error) admission.FieldErrors {
	var verr *admission.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}
