package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/admitwiz/internal/admission"
	"github.com/imamik/admitwiz/internal/config"
)

func TestValidate_CompleteApplication(t *testing.T) {
	saveAndRestoreFactories(t)
	app := completeApplication(t)
	loadApplication = func(string) (*admission.Application, error) { return app, nil }

	var err error
	output := captureOutput(func() {
		err = Validate("application.yaml", "")
	})
	require.NoError(t, err)

	assert.Contains(t, output, "Validating John Doe against student-admission")
	assert.Contains(t, output, "[OK] 1. Personal Information")
	assert.Contains(t, output, "Application is complete.")
	assert.NotContains(t, output, "[!!]")
}

func TestValidate_InvalidApplication(t *testing.T) {
	saveAndRestoreFactories(t)
	app := completeApplication(t)
	app.GPA = "5.2"
	app.Contact.Email = ""
	loadApplication = func(string) (*admission.Application, error) { return app, nil }

	var err error
	output := captureOutput(func() {
		err = Validate("application.yaml", "")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrApplicationInvalid)
	assert.Contains(t, err.Error(), "2 of 7 steps failed")

	assert.Contains(t, output, "[!!] 2. Academic Background")
	assert.Contains(t, output, "gpa: GPA must be a number between 0.0 and 4.0")
	assert.Contains(t, output, "contact.email: Email is required")
	assert.Contains(t, output, "2 step(s) need attention.")
}

func TestValidate_OptionalStepDoesNotFail(t *testing.T) {
	saveAndRestoreFactories(t)
	app := completeApplication(t)
	app.TuitionPayment = ""
	loadApplication = func(string) (*admission.Application, error) { return app, nil }
	loadFlow = func(string) (*config.Flow, error) {
		return config.Parse([]byte(`
steps:
  - id: personal
  - id: financial
    optional: true
`))
	}

	var err error
	output := captureOutput(func() {
		err = Validate("application.yaml", "flow.yaml")
	})
	require.NoError(t, err)
	assert.Contains(t, output, "[--] 2. Financial Information (optional, 1 issue(s))")
}

func TestValidate_FromFile(t *testing.T) {
	saveAndRestoreFactories(t)
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("application:\n  first_name: Ada\n"), 0600))

	var err error
	output := captureOutput(func() {
		err = Validate(path, "")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrApplicationInvalid)
	assert.Contains(t, output, "last_name: Last name is required")
}

func TestValidate_LoadErrors(t *testing.T) {
	saveAndRestoreFactories(t)

	loadApplication = func(string) (*admission.Application, error) { return nil, errors.New("no such file") }
	err := Validate("missing.yaml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load application")

	loadFlow = func(string) (*config.Flow, error) { return nil, errors.New("bad flow") }
	err = Validate("application.yaml", "flow.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load flow")
}
