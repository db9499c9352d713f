package admission

import "fmt"

// Section is a titled group of summary lines shown on the review step.
type Section struct {
	Title string
	Lines []string
}

// Summary returns the review-step overview of an application.
func Summary(app *Application) []Section {
	return []Section{
		{
			Title: "Personal Information",
			Lines: []string{
				app.FullName(),
				"DOB: " + app.DateOfBirth,
			},
		},
		{
			Title: "Academic Information",
			Lines: []string{
				"Previous School: " + app.PreviousSchool,
				"GPA: " + app.GPA,
			},
		},
		{
			Title: "Program Selection",
			Lines: []string{
				"Program: " + Label(Programs, app.Program),
				"Start Date: " + app.StartDate,
				"Campus: " + Label(Campuses, app.Campus),
			},
		},
		{
			Title: "Documents",
			Lines: []string{
				fmt.Sprintf("%d document(s) uploaded", len(app.Documents)),
			},
		},
	}
}
