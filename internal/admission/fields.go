package admission

import (
	"strconv"
	"strings"
)

// FieldKind tells a renderer how to edit a field.
type FieldKind int

const (
	// KindText is a free-form single line.
	KindText FieldKind = iota
	// KindSelect picks one value from Options.
	KindSelect
	// KindToggle is a yes/no checkbox.
	KindToggle
	// KindList is a comma-separated list of values.
	KindList
)

// Field describes one editable value of an Application.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Hint        string
	Kind        FieldKind
	Required    bool
	Options     []Option
	Get         func(*Application) string
	Set         func(*Application, string)
}

func text(key, label, placeholder string, required bool, ptr func(*Application) *string) Field {
	return Field{
		Key:         key,
		Label:       label,
		Placeholder: placeholder,
		Kind:        KindText,
		Required:    required,
		Get:         func(a *Application) string { return *ptr(a) },
		Set:         func(a *Application, v string) { *ptr(a) = v },
	}
}

func choice(key, label string, opts []Option, ptr func(*Application) *string) Field {
	return Field{
		Key:      key,
		Label:    label,
		Kind:     KindSelect,
		Required: true,
		Options:  opts,
		Get:      func(a *Application) string { return *ptr(a) },
		Set:      func(a *Application, v string) { *ptr(a) = v },
	}
}

func toggle(key, label string, required bool, ptr func(*Application) *bool) Field {
	return Field{
		Key:      key,
		Label:    label,
		Kind:     KindToggle,
		Required: required,
		Get:      func(a *Application) string { return strconv.FormatBool(*ptr(a)) },
		Set: func(a *Application, v string) {
			b, _ := strconv.ParseBool(v)
			*ptr(a) = b
		},
	}
}

func list(key, label, placeholder, hint string, required bool, ptr func(*Application) *[]string) Field {
	return Field{
		Key:         key,
		Label:       label,
		Placeholder: placeholder,
		Hint:        hint,
		Kind:        KindList,
		Required:    required,
		Get:         func(a *Application) string { return strings.Join(*ptr(a), ", ") },
		Set:         func(a *Application, v string) { *ptr(a) = SplitList(v) },
	}
}

// SplitList splits a comma-separated value, trimming blanks.
func SplitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Fields returns the editable fields of a step in display order.
func Fields(stepID string) []Field {
	switch stepID {
	case StepPersonal:
		return []Field{
			text("first_name", "First Name", "John", true, func(a *Application) *string { return &a.FirstName }),
			text("last_name", "Last Name", "Doe", true, func(a *Application) *string { return &a.LastName }),
			text("date_of_birth", "Date of Birth", "YYYY-MM-DD", true, func(a *Application) *string { return &a.DateOfBirth }),
			choice("gender", "Gender", Genders, func(a *Application) *string { return &a.Gender }),
			choice("nationality", "Nationality", Nationalities, func(a *Application) *string { return &a.Nationality }),
		}
	case StepAcademic:
		gpa := text("gpa", "GPA", "3.5", true, func(a *Application) *string { return &a.GPA })
		gpa.Hint = "Enter GPA on a 4.0 scale"
		return []Field{
			text("previous_school", "Previous School", "Lincoln High School", true, func(a *Application) *string { return &a.PreviousSchool }),
			choice("grade_level", "Grade Level", GradeLevels, func(a *Application) *string { return &a.GradeLevel }),
			gpa,
			list("academic_interests", "Academic Interests", "mathematics, physics", "Separate interests with commas", false,
				func(a *Application) *[]string { return &a.AcademicInterests }),
			list("extracurricular_activities", "Extracurricular Activities", "chess club, soccer", "Separate activities with commas", false,
				func(a *Application) *[]string { return &a.ExtracurricularActivities }),
		}
	case StepContact:
		return []Field{
			text("contact.email", "Email", "john.doe@example.com", true, func(a *Application) *string { return &a.Contact.Email }),
			text("contact.phone", "Phone", "+1 555 123 4567", true, func(a *Application) *string { return &a.Contact.Phone }),
			text("contact.emergency_contact.name", "Emergency Contact", "Jane Doe", false, func(a *Application) *string { return &a.Contact.EmergencyContact.Name }),
			text("contact.emergency_contact.relationship", "Relationship", "Parent", false, func(a *Application) *string { return &a.Contact.EmergencyContact.Relationship }),
			text("contact.emergency_contact.phone", "Emergency Phone", "+1 555 765 4321", false, func(a *Application) *string { return &a.Contact.EmergencyContact.Phone }),
			text("address.street", "Street", "123 Main St", true, func(a *Application) *string { return &a.Address.Street }),
			text("address.city", "City", "Springfield", false, func(a *Application) *string { return &a.Address.City }),
			text("address.state", "State", "IL", false, func(a *Application) *string { return &a.Address.State }),
			text("address.zip_code", "ZIP Code", "62701", false, func(a *Application) *string { return &a.Address.ZipCode }),
			text("address.country", "Country", "United States", false, func(a *Application) *string { return &a.Address.Country }),
		}
	case StepDocuments:
		return []Field{
			list("documents", "Documents", "transcript.pdf, birth-certificate.png",
				"Transcript, birth certificate, ID and optional recommendation letters (PDF, DOC or image, max 5 MB each)", true,
				func(a *Application) *[]string { return &a.Documents }),
		}
	case StepProgram:
		return []Field{
			choice("program", "Academic Program", Programs, func(a *Application) *string { return &a.Program }),
			text("start_date", "Start Date", "YYYY-MM-DD", true, func(a *Application) *string { return &a.StartDate }),
			choice("campus", "Campus", Campuses, func(a *Application) *string { return &a.Campus }),
		}
	case StepFinancial:
		return []Field{
			choice("tuition_payment", "Tuition Payment Method", PaymentMethods, func(a *Application) *string { return &a.TuitionPayment }),
			toggle("scholarship", "I am applying for scholarships", false, func(a *Application) *bool { return &a.Scholarship }),
			text("scholarship_details", "Scholarship Details", "Describe your scholarship application or financial need", false,
				func(a *Application) *string { return &a.ScholarshipDetails }),
			text("special_needs", "Special Needs", "Accessibility or learning support", false, func(a *Application) *string { return &a.SpecialNeeds }),
			text("additional_notes", "Additional Notes", "Anything else we should know", false, func(a *Application) *string { return &a.AdditionalNotes }),
		}
	case StepReview:
		return []Field{
			toggle("terms_accepted", "I accept the terms and conditions", true, func(a *Application) *bool { return &a.TermsAccepted }),
			toggle("privacy_accepted", "I accept the privacy policy", true, func(a *Application) *bool { return &a.PrivacyAccepted }),
		}
	}
	return nil
}
