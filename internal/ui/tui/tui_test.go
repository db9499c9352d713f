package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/imamik/admitwiz/internal/admission"
	"github.com/imamik/admitwiz/internal/wizard"
)

func newTestModel(t *testing.T, app *admission.Application, opts wizard.Options, steps []wizard.Step) (Model, *wizard.Controller) {
	t.Helper()
	if steps == nil {
		steps = admission.Steps()
	}
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}

	ctrl, err := wizard.New(steps, opts, nil)
	require.NoError(t, err)
	ctrl.SetGate(admission.Gate(ids, app))

	return NewModel(admission.FlowName, ctrl, app), ctrl
}

func completeApplication(t *testing.T) *admission.Application {
	t.Helper()
	doc := filepath.Join(t.TempDir(), "transcript.pdf")
	require.NoError(t, os.WriteFile(doc, []byte("%PDF-1.4"), 0600))

	app := &admission.Application{
		FirstName:       "John",
		LastName:        "Doe",
		DateOfBirth:     "2008-04-12",
		Gender:          "male",
		Nationality:     "US",
		PreviousSchool:  "Lincoln High School",
		GradeLevel:      "12",
		GPA:             "3.7",
		Documents:       []string{doc},
		Program:         "computer-science",
		StartDate:       "2027-09-01",
		Campus:          "main",
		TuitionPayment:  "installments",
		TermsAccepted:   true,
		PrivacyAccepted: true,
	}
	app.Contact.Email = "john.doe@example.com"
	app.Contact.Phone = "+1 555 123 4567"
	app.Address.Street = "123 Main St"
	return app
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true} }

// press feeds msgs through Update and returns the resulting model and the
// command of the last message.
func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestJumpKey(t *testing.T) {
	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"alt+1", 1, true},
		{"alt+9", 9, true},
		{"alt+0", 0, false},
		{"alt+12", 0, false},
		{"1", 0, false},
		{"alt+a", 0, false},
	}
	for _, tt := range tests {
		got, ok := jumpKey(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}
}

func TestModel_InitialView(t *testing.T) {
	m, _ := newTestModel(t, &admission.Application{}, wizard.DefaultOptions(), nil)

	view := m.View()
	assert.Contains(t, view, "admitwiz: student-admission")
	assert.Contains(t, view, "Step 1 of 7")
	assert.Contains(t, view, "0% Complete")
	assert.Contains(t, view, "Personal Information")
	assert.Contains(t, view, "First Name *")
	assert.NotContains(t, view, "Please fix the following")
	assert.NotContains(t, view, "ctrl+p: back")
}

func TestModel_HideProgress(t *testing.T) {
	opts := wizard.DefaultOptions()
	opts.ShowProgress = false
	m, _ := newTestModel(t, &admission.Application{}, opts, nil)

	assert.NotContains(t, m.View(), "% Complete")
}

func TestModel_TypingUpdatesApplication(t *testing.T) {
	app := &admission.Application{}
	m, _ := newTestModel(t, app, wizard.DefaultOptions(), nil)

	m, _ = press(t, m, runes("Ada"), key(tea.KeyTab), runes("Lovelace"))
	assert.Equal(t, "Ada", app.FirstName)
	assert.Equal(t, "Lovelace", app.LastName)
	assert.Equal(t, 1, m.focus)

	m, _ = press(t, m, key(tea.KeyShiftTab))
	assert.Equal(t, 0, m.focus)
}

func TestModel_SelectAndToggle(t *testing.T) {
	app := &admission.Application{}
	m, ctrl := newTestModel(t, app, wizard.DefaultOptions(), nil)

	// gender is the fourth field of the personal step
	m, _ = press(t, m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab))
	m, _ = press(t, m, key(tea.KeyRight))
	assert.Equal(t, admission.Genders[0].Value, app.Gender)
	m, _ = press(t, m, key(tea.KeyLeft))
	assert.Equal(t, admission.Genders[len(admission.Genders)-1].Value, app.Gender)
	assert.Contains(t, m.View(), "< Prefer not to say >")

	require.NoError(t, ctrl.Restore(ctrl.Len()-1))
	m.loadStep()
	m, _ = press(t, m, runes(" "))
	assert.True(t, app.TermsAccepted)
	m, _ = press(t, m, runes(" "))
	assert.False(t, app.TermsAccepted)
	_ = m
}

func TestModel_AdvanceBlockedShowsErrors(t *testing.T) {
	app := &admission.Application{FirstName: "Ada"}
	m, ctrl := newTestModel(t, app, wizard.DefaultOptions(), nil)

	m, cmd := press(t, m, key(tea.KeyCtrlN))
	assert.False(t, isQuit(cmd))
	assert.Equal(t, 0, ctrl.Current())
	require.Error(t, ctrl.StepError(0))

	// focus jumps to the first failing field
	assert.Equal(t, 1, m.focus)

	view := m.View()
	assert.Contains(t, view, "Please fix the following")
	assert.Contains(t, view, "Last name is required")
	assert.NotContains(t, view, "First name is required")
}

func TestModel_AdvanceAndRetreat(t *testing.T) {
	app := completeApplication(t)
	m, ctrl := newTestModel(t, app, wizard.DefaultOptions(), nil)

	m, _ = press(t, m, key(tea.KeyCtrlN), key(tea.KeyCtrlN))
	assert.Equal(t, 2, ctrl.Current())
	assert.Contains(t, m.View(), "Contact & Address")
	assert.Contains(t, m.View(), "ctrl+p: back")

	m, _ = press(t, m, key(tea.KeyCtrlP))
	assert.Equal(t, 1, ctrl.Current())
	assert.Equal(t, "Lincoln High School", m.inputs[0].Value())
}

func TestModel_EnterOnLastFieldAdvances(t *testing.T) {
	app := completeApplication(t)
	m, ctrl := newTestModel(t, app, wizard.DefaultOptions(), nil)

	n := len(admission.Fields(admission.StepPersonal))
	for i := 0; i < n-1; i++ {
		m, _ = press(t, m, key(tea.KeyEnter))
	}
	assert.Equal(t, 0, ctrl.Current())
	assert.Equal(t, n-1, m.focus)

	_, _ = press(t, m, key(tea.KeyEnter))
	assert.Equal(t, 1, ctrl.Current())
}

func TestModel_RetreatDisabled(t *testing.T) {
	opts := wizard.DefaultOptions()
	opts.AllowBackNavigation = false
	m, ctrl := newTestModel(t, completeApplication(t), opts, nil)

	m, _ = press(t, m, key(tea.KeyCtrlN), key(tea.KeyCtrlP))
	assert.Equal(t, 1, ctrl.Current())
	assert.Contains(t, m.View(), "Going back is disabled")
}

func TestModel_Jump(t *testing.T) {
	m, ctrl := newTestModel(t, completeApplication(t), wizard.DefaultOptions(), nil)

	m, _ = press(t, m, key(tea.KeyCtrlN), key(tea.KeyCtrlN), key(tea.KeyCtrlN))
	require.Equal(t, 3, ctrl.Current())

	m, _ = press(t, m, alt('2'))
	assert.Equal(t, 1, ctrl.Current())

	// forward jumps need skipping enabled
	m, _ = press(t, m, alt('5'))
	assert.Equal(t, 1, ctrl.Current())
	assert.Contains(t, m.View(), "Step 5 is not reachable yet")
}

func TestModel_JumpForwardBlockedByGate(t *testing.T) {
	opts := wizard.DefaultOptions()
	opts.AllowSkipSteps = true
	m, ctrl := newTestModel(t, &admission.Application{}, opts, nil)

	m, _ = press(t, m, alt('3'))
	assert.Equal(t, 0, ctrl.Current())
	assert.Contains(t, m.View(), "First name is required")
}

func TestModel_Skip(t *testing.T) {
	steps := admission.Steps()
	steps[1].Optional = true
	app := completeApplication(t)
	app.PreviousSchool = ""
	m, ctrl := newTestModel(t, app, wizard.DefaultOptions(), steps)

	m, _ = press(t, m, key(tea.KeyCtrlK))
	assert.Equal(t, 0, ctrl.Current())
	assert.Contains(t, m.View(), "This step is required")

	m, _ = press(t, m, key(tea.KeyCtrlN))
	require.Equal(t, 1, ctrl.Current())
	view := m.View()
	assert.Contains(t, view, "Optional")
	assert.Contains(t, view, "ctrl+k: skip")

	_, _ = press(t, m, key(tea.KeyCtrlK))
	assert.Equal(t, 2, ctrl.Current())
}

func TestModel_Submit(t *testing.T) {
	app := completeApplication(t)
	m, ctrl := newTestModel(t, app, wizard.DefaultOptions(), nil)

	for i := 0; i < ctrl.Len()-1; i++ {
		m, _ = press(t, m, key(tea.KeyCtrlN))
	}
	require.True(t, ctrl.IsLast())
	assert.Contains(t, m.View(), "Summary")
	assert.Contains(t, m.View(), "Computer Science")

	m, cmd := press(t, m, key(tea.KeyCtrlN))
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Submitted())
	assert.False(t, m.Aborted())
	assert.Equal(t, 1, ctrl.State().Completions)
}

func TestModel_SubmitRevisitsInvalidStep(t *testing.T) {
	app := completeApplication(t)
	app.GPA = "9"
	m, ctrl := newTestModel(t, app, wizard.DefaultOptions(), nil)
	require.NoError(t, ctrl.Restore(ctrl.Len()-1))
	m.loadStep()

	m, cmd := press(t, m, key(tea.KeyCtrlN))
	assert.False(t, isQuit(cmd))
	assert.False(t, m.Submitted())
	assert.Equal(t, 1, ctrl.Current())
	assert.Contains(t, m.View(), "GPA must be a number between 0.0 and 4.0")
}

func TestModel_Abort(t *testing.T) {
	m, _ := newTestModel(t, &admission.Application{}, wizard.DefaultOptions(), nil)

	m, cmd := press(t, m, key(tea.KeyEsc))
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Aborted())
	assert.False(t, m.Submitted())
}

func TestModel_SaveDraft(t *testing.T) {
	app := &admission.Application{FirstName: "Ada"}
	m, _ := newTestModel(t, app, wizard.DefaultOptions(), nil)

	// without a saver ctrl+s does nothing
	_, cmd := press(t, m, key(tea.KeyCtrlS))
	assert.Nil(t, cmd)

	var gotStep string
	m = m.WithDraftSaver(func(stepID string, a *admission.Application) (string, error) {
		gotStep = stepID
		assert.NotSame(t, app, a)
		assert.Equal(t, app, a)
		return "draft.yaml", nil
	})
	assert.Contains(t, m.View(), "ctrl+s: save draft")

	m, cmd = press(t, m, key(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, DraftSavedMsg{Path: "draft.yaml"}, msg)
	assert.Equal(t, admission.StepPersonal, gotStep)

	m, _ = press(t, m, msg)
	assert.Contains(t, m.View(), "Draft saved to draft.yaml")

	m, _ = press(t, m, DraftSavedMsg{Err: errors.New("disk full")})
	assert.Contains(t, m.View(), "Draft not saved: disk full")
}

func TestModel_SaveDraftWhileTyping(t *testing.T) {
	app := &admission.Application{FirstName: "Ada", Documents: []string{"transcript.pdf"}}
	m, _ := newTestModel(t, app, wizard.DefaultOptions(), nil)

	var saved string
	m = m.WithDraftSaver(func(_ string, a *admission.Application) (string, error) {
		data, err := yaml.Marshal(a)
		saved = string(data)
		return "draft.yaml", err
	})

	_, cmd := press(t, m, key(tea.KeyCtrlS))
	require.NotNil(t, cmd)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	for _, r := range "Lovelace" {
		m, _ = press(t, m, runes(string(r)))
	}
	msg := <-done

	assert.Equal(t, DraftSavedMsg{Path: "draft.yaml"}, msg)
	assert.Equal(t, "AdaLovelace", app.FirstName)
	assert.Contains(t, saved, "first_name: Ada\n")
	assert.Contains(t, saved, "transcript.pdf")
}

func TestModel_SkipOptionalLastStepSubmits(t *testing.T) {
	steps := []wizard.Step{
		{ID: admission.StepPersonal, Title: "Personal Information"},
		{ID: admission.StepFinancial, Title: "Financial Information", Optional: true},
	}
	app := completeApplication(t)
	m, ctrl := newTestModel(t, app, wizard.DefaultOptions(), steps)

	m, _ = press(t, m, key(tea.KeyCtrlN))
	require.True(t, ctrl.IsLast())

	m, cmd := press(t, m, key(tea.KeyCtrlK))
	assert.True(t, isQuit(cmd))
	assert.True(t, m.Submitted())
	assert.Equal(t, 1, ctrl.State().Completions)
}

func TestModel_SkipOptionalLastStepRevisitsInvalidStep(t *testing.T) {
	steps := []wizard.Step{
		{ID: admission.StepPersonal, Title: "Personal Information"},
		{ID: admission.StepAcademic, Title: "Academic Background"},
		{ID: admission.StepFinancial, Title: "Financial Information", Optional: true},
	}
	app := completeApplication(t)
	app.GPA = "9"
	m, ctrl := newTestModel(t, app, wizard.DefaultOptions(), steps)
	require.NoError(t, ctrl.Restore(2))
	m.loadStep()

	m, cmd := press(t, m, key(tea.KeyCtrlK))
	assert.False(t, isQuit(cmd))
	assert.False(t, m.Submitted())
	assert.Equal(t, 1, ctrl.Current())
	assert.Contains(t, m.View(), "GPA must be a number between 0.0 and 4.0")
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, &admission.Application{}, wizard.DefaultOptions(), nil)

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Equal(t, 60, m.Width)
	assert.Equal(t, 20, m.Height)
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status wizard.Status
		want   string
	}{
		{wizard.StatusCompleted, checkMark},
		{wizard.StatusError, crossMark},
		{wizard.StatusCurrent, currentMark},
		{wizard.StatusPending, pendingMark},
	}
	for _, tt := range tests {
		icon, _ := statusIcon(tt.status)
		assert.Equal(t, tt.want, icon)
	}
}
