// Package tui provides a Bubble Tea-based terminal UI for the admission wizard.
package tui

// DraftSavedMsg reports the result of saving a draft.
type DraftSavedMsg struct {
	Path string
	Err  error
}
