package admission

import (
	"errors"
	"strings"
)

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("validation failed")

// Validation messages for the admission steps.
var (
	errFirstNameRequired      = errors.New("First name is required")
	errLastNameRequired       = errors.New("Last name is required")
	errDateOfBirthRequired    = errors.New("Date of birth is required")
	errDateOfBirthInvalid     = errors.New("Date of birth must be a past date (YYYY-MM-DD)")
	errGenderRequired         = errors.New("Gender is required")
	errNationalityRequired    = errors.New("Nationality is required")
	errPreviousSchoolRequired = errors.New("Previous school is required")
	errGradeLevelRequired     = errors.New("Grade level is required")
	errGPARequired            = errors.New("GPA is required")
	errGPAInvalid             = errors.New("GPA must be a number between 0.0 and 4.0")
	errEmailRequired          = errors.New("Email is required")
	errEmailInvalid           = errors.New("Email address is invalid")
	errPhoneRequired          = errors.New("Phone is required")
	errPhoneInvalid           = errors.New("Phone number is invalid")
	errStreetRequired         = errors.New("Street address is required")
	errDocumentsRequired      = errors.New("At least one document is required")
	errProgramRequired        = errors.New("Program selection is required")
	errStartDateRequired      = errors.New("Start date is required")
	errStartDateInvalid       = errors.New("Start date must be a date (YYYY-MM-DD)")
	errCampusRequired         = errors.New("Campus selection is required")
	errPaymentRequired        = errors.New("Payment method is required")
	errTermsRequired          = errors.New("You must accept the terms")
	errPrivacyRequired        = errors.New("You must accept the privacy policy")
	errUnknownOption          = errors.New("Please choose one of the listed options")
)

// FieldError is a validation message attached to one field.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is the ordered list of validation failures of one step.
type FieldErrors []FieldError

func (fe *FieldErrors) add(field string, err error) {
	*fe = append(*fe, FieldError{Field: field, Message: err.Error()})
}

// Get returns the message for field, if any.
func (fe FieldErrors) Get(field string) (string, bool) {
	for _, e := range fe {
		if e.Field == field {
			return e.Message, true
		}
	}
	return "", false
}

// Err returns nil when there are no failures and a *ValidationError otherwise.
func (fe FieldErrors) Err(step string) error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Step: step, Fields: fe}
}

// ValidationError reports the failed fields of a step.
type ValidationError struct {
	Step   string
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return e.Step + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
