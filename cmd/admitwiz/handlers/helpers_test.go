package handlers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imamik/admitwiz/internal/admission"
)

// saveAndRestoreFactories restores every injectable function after the test.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origLoadFlow := loadFlow
	origLoadDraft := loadDraft
	origSaveDraft := saveDraft
	origIsInteractiveTTY := isInteractiveTTY
	origRunProgram := runProgram
	origNewS3Sink := newS3Sink
	origNewReceipt := newReceipt
	origLoadApplication := loadApplication
	origOpenLogFile := openLogFile

	t.Cleanup(func() {
		loadFlow = origLoadFlow
		loadDraft = origLoadDraft
		saveDraft = origSaveDraft
		isInteractiveTTY = origIsInteractiveTTY
		runProgram = origRunProgram
		newS3Sink = origNewS3Sink
		newReceipt = origNewReceipt
		loadApplication = origLoadApplication
		openLogFile = origOpenLogFile
	})
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	f()

	_ = w.Close()
	os.Stdout = old
	return <-done
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
