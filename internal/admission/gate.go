package admission

import "github.com/imamik/admitwiz/internal/wizard"

// Gate returns a wizard gate that validates the step at the given index of
// stepIDs against app. app is read at call time, so edits made between
// navigation attempts are seen.
func Gate(stepIDs []string, app *Application) wizard.Gate {
	return func(index int) error {
		if index < 0 || index >= len(stepIDs) {
			return nil
		}
		id := stepIDs[index]
		return Validate(id, app).Err(id)
	}
}
