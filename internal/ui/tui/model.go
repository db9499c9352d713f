package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/admitwiz/internal/admission"
	"github.com/imamik/admitwiz/internal/wizard"
)

// DraftSaver persists an unfinished application. stepID is the active step.
type DraftSaver func(stepID string, app *admission.Application) (path string, err error)

// Model is the Bubble Tea model for the admission wizard.
type Model struct {
	FlowName string

	ctrl *wizard.Controller
	app  *admission.Application

	// Editor state for the active step
	fields []admission.Field
	inputs []textinput.Model
	focus  int

	saveDraft DraftSaver

	// banner overrides the active step's gate error, e.g. after a failed
	// final check on completion.
	banner error
	notice string

	// UI state
	Width  int
	Height int

	submitted bool
	aborted   bool
}

// NewModel creates a model driving ctrl and editing app.
func NewModel(flowName string, ctrl *wizard.Controller, app *admission.Application) Model {
	m := Model{
		FlowName: flowName,
		ctrl:     ctrl,
		app:      app,
	}
	m.loadStep()
	return m
}

// WithDraftSaver enables ctrl+s.
func (m Model) WithDraftSaver(s DraftSaver) Model {
	m.saveDraft = s
	return m
}

// Submitted reports whether the wizard completed with a valid application.
func (m Model) Submitted() bool { return m.submitted }

// Aborted reports whether the user quit before completing.
func (m Model) Aborted() bool { return m.aborted }

// Application returns the edited application.
func (m Model) Application() *admission.Application { return m.app }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case DraftSavedMsg:
		if msg.Err != nil {
			m.notice = fmt.Sprintf("Draft not saved: %v", msg.Err)
		} else {
			m.notice = fmt.Sprintf("Draft saved to %s", msg.Path)
		}
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "ctrl+n":
		return m.advance()
	case "ctrl+p":
		return m.retreat()
	case "ctrl+k":
		return m.skip()
	case "ctrl+s":
		return m, m.draftCmd()
	case "tab", "down":
		return m, m.moveFocus(1)
	case "shift+tab", "up":
		return m, m.moveFocus(-1)
	case "enter":
		if m.focus >= len(m.fields)-1 {
			return m.advance()
		}
		return m, m.moveFocus(1)
	}

	if n, ok := jumpKey(key); ok {
		return m.jump(n - 1)
	}

	if len(m.fields) == 0 {
		return m, nil
	}
	f := m.fields[m.focus]
	switch f.Kind {
	case admission.KindSelect:
		switch key {
		case "left", "h":
			m.cycleOption(-1)
		case "right", "l", " ", "space":
			m.cycleOption(1)
		}
		return m, nil
	case admission.KindToggle:
		if key == " " || key == "space" || key == "x" {
			cur, _ := strconv.ParseBool(f.Get(m.app))
			f.Set(m.app, strconv.FormatBool(!cur))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	f.Set(m.app, m.inputs[m.focus].Value())
	return m, cmd
}

// jumpKey parses "alt+1" through "alt+9".
func jumpKey(key string) (int, bool) {
	digit, ok := strings.CutPrefix(key, "alt+")
	if !ok || len(digit) != 1 || digit[0] < '1' || digit[0] > '9' {
		return 0, false
	}
	return int(digit[0] - '0'), true
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	m.notice = ""
	m.banner = nil
	out := m.ctrl.Advance()
	switch out.Result {
	case wizard.ResultCompleted:
		return m.complete()
	case wizard.ResultBlocked:
		m.focusFirstError()
	case wizard.ResultMoved:
		return m, m.loadStep()
	}
	return m, nil
}

func (m Model) retreat() (tea.Model, tea.Cmd) {
	m.banner = nil
	out := m.ctrl.Retreat()
	if out.Result == wizard.ResultRejected {
		if !m.ctrl.Options().AllowBackNavigation {
			m.notice = "Going back is disabled for this application"
		}
		return m, nil
	}
	m.notice = ""
	return m, m.loadStep()
}

func (m Model) jump(k int) (tea.Model, tea.Cmd) {
	m.banner = nil
	out := m.ctrl.JumpTo(k)
	switch out.Result {
	case wizard.ResultRejected:
		if k >= 0 && k < m.ctrl.Len() {
			m.notice = fmt.Sprintf("Step %d is not reachable yet", k+1)
		}
		return m, nil
	case wizard.ResultBlocked:
		m.notice = ""
		m.focusFirstError()
		return m, nil
	}
	m.notice = ""
	return m, m.loadStep()
}

func (m Model) skip() (tea.Model, tea.Cmd) {
	m.banner = nil
	out := m.ctrl.Skip()
	switch out.Result {
	case wizard.ResultRejected:
		m.notice = "This step is required"
		return m, nil
	case wizard.ResultCompleted:
		m.notice = ""
		return m.complete()
	}
	m.notice = ""
	return m, m.loadStep()
}

// complete runs the final check after the last step. A failure sends the
// user back to the first invalid step.
func (m Model) complete() (tea.Model, tea.Cmd) {
	if i, err := m.firstInvalidStep(); err != nil {
		_ = m.ctrl.Restore(i)
		m.banner = err
		m.loadStep()
		return m, nil
	}
	m.submitted = true
	return m, tea.Quit
}

func (m Model) draftCmd() tea.Cmd {
	if m.saveDraft == nil {
		return nil
	}
	// The command runs off the update loop, so it gets its own copy.
	save, stepID, app := m.saveDraft, m.ctrl.CurrentStep().ID, m.app.Clone()
	return func() tea.Msg {
		path, err := save(stepID, app)
		return DraftSavedMsg{Path: path, Err: err}
	}
}

// firstInvalidStep checks every required step, since skipping and jumping can
// leave earlier steps unvalidated.
func (m Model) firstInvalidStep() (int, error) {
	for i, s := range m.ctrl.Steps() {
		if s.Optional {
			continue
		}
		if err := admission.Validate(s.ID, m.app).Err(s.ID); err != nil {
			return i, err
		}
	}
	return -1, nil
}

// loadStep rebuilds the field editor for the active step.
func (m *Model) loadStep() tea.Cmd {
	m.fields = admission.Fields(m.ctrl.CurrentStep().ID)
	m.inputs = make([]textinput.Model, len(m.fields))
	for i, f := range m.fields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.CharLimit = 256
		in.Prompt = ""
		if f.Kind == admission.KindText || f.Kind == admission.KindList {
			in.SetValue(f.Get(m.app))
		}
		m.inputs[i] = in
	}
	m.focus = 0
	return m.setFocus(0)
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	next := (m.focus + delta + len(m.fields)) % len(m.fields)
	return m.setFocus(next)
}

func (m *Model) setFocus(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

func (m *Model) cycleOption(delta int) {
	f := m.fields[m.focus]
	if len(f.Options) == 0 {
		return
	}
	cur := -1
	for i, o := range f.Options {
		if o.Value == f.Get(m.app) {
			cur = i
			break
		}
	}
	next := 0
	if cur >= 0 {
		next = (cur + delta + len(f.Options)) % len(f.Options)
	} else if delta < 0 {
		next = len(f.Options) - 1
	}
	f.Set(m.app, f.Options[next].Value)
}

func (m *Model) focusFirstError() {
	fields := m.fieldErrors()
	for i, f := range m.fields {
		if _, ok := fields.Get(f.Key); ok {
			m.setFocus(i)
			return
		}
	}
}

// activeError returns the error shown in the banner.
func (m Model) activeError() error {
	if m.banner != nil {
		return m.banner
	}
	return m.ctrl.StepError(m.ctrl.Current())
}

func (m Model) fieldErrors() admission.FieldErrors {
	return fieldErrorsOf(m.activeError())
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
