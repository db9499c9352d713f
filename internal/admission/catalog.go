package admission

// Option is a selectable value with a display label.
type Option struct {
	Value string
	Label string
}

// Genders lists the gender choices.
var Genders = []Option{
	{Value: "male", Label: "Male"},
	{Value: "female", Label: "Female"},
	{Value: "other", Label: "Other"},
	{Value: "prefer-not-to-say", Label: "Prefer not to say"},
}

// Nationalities lists the nationality choices.
var Nationalities = []Option{
	{Value: "US", Label: "United States"},
	{Value: "CA", Label: "Canada"},
	{Value: "UK", Label: "United Kingdom"},
	{Value: "AU", Label: "Australia"},
	{Value: "DE", Label: "Germany"},
	{Value: "FR", Label: "France"},
	{Value: "other", Label: "Other"},
}

// GradeLevels lists the grade level choices.
var GradeLevels = []Option{
	{Value: "9", Label: "Grade 9"},
	{Value: "10", Label: "Grade 10"},
	{Value: "11", Label: "Grade 11"},
	{Value: "12", Label: "Grade 12"},
	{Value: "freshman", Label: "Freshman"},
	{Value: "sophomore", Label: "Sophomore"},
	{Value: "junior", Label: "Junior"},
	{Value: "senior", Label: "Senior"},
}

// Programs lists the academic programs.
var Programs = []Option{
	{Value: "computer-science", Label: "Computer Science"},
	{Value: "engineering", Label: "Engineering"},
	{Value: "business", Label: "Business Administration"},
	{Value: "arts", Label: "Liberal Arts"},
	{Value: "sciences", Label: "Natural Sciences"},
	{Value: "medicine", Label: "Pre-Medicine"},
	{Value: "law", Label: "Pre-Law"},
}

// Campuses lists the campus choices.
var Campuses = []Option{
	{Value: "main", Label: "Main Campus"},
	{Value: "north", Label: "North Campus"},
	{Value: "south", Label: "South Campus"},
	{Value: "online", Label: "Online Program"},
}

// PaymentMethods lists the tuition payment methods.
var PaymentMethods = []Option{
	{Value: "full-payment", Label: "Full Payment"},
	{Value: "installments", Label: "Monthly Installments"},
	{Value: "financial-aid", Label: "Financial Aid"},
	{Value: "scholarship", Label: "Scholarship"},
}

// Label returns the label for value, or value itself if it is not listed.
func Label(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// hasValue reports whether value is one of opts.
func hasValue(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
