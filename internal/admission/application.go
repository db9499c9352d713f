package admission

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Application holds every answer collected by the admission wizard.
type Application struct {
	// Personal information
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	DateOfBirth string `yaml:"date_of_birth"` // YYYY-MM-DD
	Gender      string `yaml:"gender"`
	Nationality string `yaml:"nationality"`

	// Academic background
	PreviousSchool            string   `yaml:"previous_school"`
	GradeLevel                string   `yaml:"grade_level"`
	GPA                       string   `yaml:"gpa"`
	AcademicInterests         []string `yaml:"academic_interests,omitempty"`
	ExtracurricularActivities []string `yaml:"extracurricular_activities,omitempty"`

	Contact Contact `yaml:"contact"`
	Address Address `yaml:"address"`

	// Documents are local file paths.
	Documents []string `yaml:"documents,omitempty"`

	// Program selection
	Program   string `yaml:"program"`
	StartDate string `yaml:"start_date"` // YYYY-MM-DD
	Campus    string `yaml:"campus"`

	// Financial information
	TuitionPayment     string `yaml:"tuition_payment"`
	Scholarship        bool   `yaml:"scholarship"`
	ScholarshipDetails string `yaml:"scholarship_details,omitempty"`

	// Additional information
	SpecialNeeds    string `yaml:"special_needs,omitempty"`
	AdditionalNotes string `yaml:"additional_notes,omitempty"`

	// Agreements
	TermsAccepted   bool `yaml:"terms_accepted"`
	PrivacyAccepted bool `yaml:"privacy_accepted"`
}

// Contact holds the applicant's contact details.
type Contact struct {
	Email            string           `yaml:"email"`
	Phone            string           `yaml:"phone"`
	EmergencyContact EmergencyContact `yaml:"emergency_contact"`
}

// EmergencyContact is the person to reach in an emergency.
type EmergencyContact struct {
	Name         string `yaml:"name"`
	Relationship string `yaml:"relationship"`
	Phone        string `yaml:"phone"`
}

// Address is the applicant's residential address.
type Address struct {
	Street  string `yaml:"street"`
	City    string `yaml:"city"`
	State   string `yaml:"state"`
	ZipCode string `yaml:"zip_code"`
	Country string `yaml:"country"`
}

// Clone returns a deep copy of the application.
func (a *Application) Clone() *Application {
	c := *a
	c.AcademicInterests = cloneStrings(a.AcademicInterests)
	c.ExtracurricularActivities = cloneStrings(a.ExtracurricularActivities)
	c.Documents = cloneStrings(a.Documents)
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// FullName returns "First Last" with empty parts dropped.
func (a *Application) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// LoadFile reads an application from a YAML file.
func LoadFile(path string) (*Application, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read application file: %w", err)
	}
	return Parse(data)
}

// Parse decodes an application from YAML. Both a bare application and a
// submitted document (with the application under an "application" key) are
// accepted.
func Parse(data []byte) (*Application, error) {
	var doc struct {
		Application *Application `yaml:"application"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	if doc.Application != nil {
		return doc.Application, nil
	}

	var app Application
	if err := yaml.Unmarshal(data, &app); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	return &app, nil
}
