package admission

import "github.com/imamik/admitwiz/internal/wizard"

// Step identifiers of the admission flow, in order.
const (
	StepPersonal  = "personal"
	StepAcademic  = "academic"
	StepContact   = "contact"
	StepDocuments = "documents"
	StepProgram   = "program"
	StepFinancial = "financial"
	StepReview    = "review"
)

// Icon references understood by the terminal renderer.
const (
	IconPersonal  = "personal"
	IconAcademic  = "academic"
	IconDocuments = "documents"
	IconPayment   = "payment"
	IconReview    = "review"
)

// FlowName is the name of the built-in admission flow.
const FlowName = "student-admission"

var stepOrder = []string{
	StepPersonal,
	StepAcademic,
	StepContact,
	StepDocuments,
	StepProgram,
	StepFinancial,
	StepReview,
}

// Steps returns the admission steps in flow order.
func Steps() []wizard.Step {
	return []wizard.Step{
		{ID: StepPersonal, Title: "Personal Information", Description: "Basic details about the student", Icon: IconPersonal},
		{ID: StepAcademic, Title: "Academic Background", Description: "Previous education and achievements", Icon: IconAcademic},
		{ID: StepContact, Title: "Contact & Address", Description: "Contact information and location", Icon: IconPersonal},
		{ID: StepDocuments, Title: "Required Documents", Description: "Upload necessary documents", Icon: IconDocuments},
		{ID: StepProgram, Title: "Program Selection", Description: "Choose your academic program", Icon: IconAcademic},
		{ID: StepFinancial, Title: "Financial Information", Description: "Tuition and payment details", Icon: IconPayment},
		{ID: StepReview, Title: "Review & Submit", Description: "Review all information", Icon: IconReview},
	}
}

// StepIDs returns the admission step identifiers in flow order.
func StepIDs() []string {
	out := make([]string, len(stepOrder))
	copy(out, stepOrder)
	return out
}

// IsStepID reports whether id names an admission step.
func IsStepID(id string) bool {
	for _, s := range stepOrder {
		if s == id {
			return true
		}
	}
	return false
}
