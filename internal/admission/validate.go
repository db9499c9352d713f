package admission

import (
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"

	// MaxDocumentSize is the upload limit per document.
	MaxDocumentSize = 5 << 20
)

// AcceptedDocumentExtensions lists the file types accepted as documents.
var AcceptedDocumentExtensions = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}

// phoneRegex accepts digits with optional leading + and common separators.
var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ()./-]{5,19}$`)

// now is replaceable in tests.
var now = time.Now

// Validate checks the fields of a single step and returns every failure in
// field order. Unknown step ids yield no errors.
func Validate(stepID string, app *Application) FieldErrors {
	var fe FieldErrors

	switch stepID {
	case StepPersonal:
		requireText(&fe, "first_name", app.FirstName, errFirstNameRequired)
		requireText(&fe, "last_name", app.LastName, errLastNameRequired)
		if requireText(&fe, "date_of_birth", app.DateOfBirth, errDateOfBirthRequired) {
			if d, err := time.Parse(dateLayout, app.DateOfBirth); err != nil || !d.Before(now()) {
				fe.add("date_of_birth", errDateOfBirthInvalid)
			}
		}
		requireOption(&fe, "gender", app.Gender, Genders, errGenderRequired)
		requireOption(&fe, "nationality", app.Nationality, Nationalities, errNationalityRequired)

	case StepAcademic:
		requireText(&fe, "previous_school", app.PreviousSchool, errPreviousSchoolRequired)
		requireOption(&fe, "grade_level", app.GradeLevel, GradeLevels, errGradeLevelRequired)
		if requireText(&fe, "gpa", app.GPA, errGPARequired) {
			if v, err := strconv.ParseFloat(strings.TrimSpace(app.GPA), 64); err != nil || v < 0 || v > 4 {
				fe.add("gpa", errGPAInvalid)
			}
		}

	case StepContact:
		if requireText(&fe, "contact.email", app.Contact.Email, errEmailRequired) {
			if _, err := mail.ParseAddress(app.Contact.Email); err != nil {
				fe.add("contact.email", errEmailInvalid)
			}
		}
		if requireText(&fe, "contact.phone", app.Contact.Phone, errPhoneRequired) {
			if !phoneRegex.MatchString(strings.TrimSpace(app.Contact.Phone)) {
				fe.add("contact.phone", errPhoneInvalid)
			}
		}
		if p := strings.TrimSpace(app.Contact.EmergencyContact.Phone); p != "" && !phoneRegex.MatchString(p) {
			fe.add("contact.emergency_contact.phone", errPhoneInvalid)
		}
		requireText(&fe, "address.street", app.Address.Street, errStreetRequired)

	case StepDocuments:
		if len(app.Documents) == 0 {
			fe.add("documents", errDocumentsRequired)
		}
		for _, doc := range app.Documents {
			if err := checkDocument(doc); err != nil {
				fe = append(fe, FieldError{Field: "documents", Message: err.Error()})
			}
		}

	case StepProgram:
		requireOption(&fe, "program", app.Program, Programs, errProgramRequired)
		if requireText(&fe, "start_date", app.StartDate, errStartDateRequired) {
			if _, err := time.Parse(dateLayout, app.StartDate); err != nil {
				fe.add("start_date", errStartDateInvalid)
			}
		}
		requireOption(&fe, "campus", app.Campus, Campuses, errCampusRequired)

	case StepFinancial:
		requireOption(&fe, "tuition_payment", app.TuitionPayment, PaymentMethods, errPaymentRequired)

	case StepReview:
		if !app.TermsAccepted {
			fe.add("terms_accepted", errTermsRequired)
		}
		if !app.PrivacyAccepted {
			fe.add("privacy_accepted", errPrivacyRequired)
		}
	}

	return fe
}

// ValidateAll runs Validate for every step in stepIDs and returns the index
// of the first failing step with its errors. It returns -1 and nil when the
// application is complete.
func ValidateAll(stepIDs []string, app *Application) (int, FieldErrors) {
	for i, id := range stepIDs {
		if fe := Validate(id, app); len(fe) > 0 {
			return i, fe
		}
	}
	return -1, nil
}

// requireText records errRequired when value is blank and reports whether a
// value was present.
func requireText(fe *FieldErrors, field, value string, errRequired error) bool {
	if strings.TrimSpace(value) == "" {
		fe.add(field, errRequired)
		return false
	}
	return true
}

func requireOption(fe *FieldErrors, field, value string, opts []Option, errRequired error) {
	if !requireText(fe, field, value, errRequired) {
		return
	}
	if !hasValue(opts, value) {
		fe.add(field, errUnknownOption)
	}
}

// checkDocument validates the extension and, when the file can be read, its
// size. Missing files are reported as errors.
func checkDocument(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	accepted := false
	for _, e := range AcceptedDocumentExtensions {
		if ext == e {
			accepted = true
			break
		}
	}
	if !accepted {
		return fmt.Errorf("%s: unsupported file type (accepted: %s)", filepath.Base(path), strings.Join(AcceptedDocumentExtensions, ", "))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: file not found", filepath.Base(path))
	}
	if info.IsDir() {
		return fmt.Errorf("%s: is a directory", filepath.Base(path))
	}
	if info.Size() > MaxDocumentSize {
		return fmt.Errorf("%s: exceeds the %d MB limit", filepath.Base(path), MaxDocumentSize>>20)
	}
	return nil
}
