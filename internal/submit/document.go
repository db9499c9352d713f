package submit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/imamik/admitwiz/internal/admission"
)

// now is replaceable in tests.
var now = time.Now

// Sink receives a completed application.
type Sink interface {
	Submit(ctx context.Context, r *Receipt, app *admission.Application) error
	// Location describes where the application ends up, for user output.
	Location(r *Receipt) string
}

// Receipt identifies one submission.
type Receipt struct {
	Reference   string    `yaml:"reference"`
	Flow        string    `yaml:"flow"`
	SubmittedAt time.Time `yaml:"submitted_at"`
}

// NewReceipt assigns a fresh reference number.
func NewReceipt(flow string) *Receipt {
	return &Receipt{
		Reference:   uuid.NewString(),
		Flow:        flow,
		SubmittedAt: now().UTC(),
	}
}

// ShortReference returns the first block of the reference, as shown to users.
func (r *Receipt) ShortReference() string {
	ref, _, _ := strings.Cut(r.Reference, "-")
	return strings.ToUpper(ref)
}

// document is the YAML layout of a submitted application.
type document struct {
	Receipt     `yaml:",inline"`
	Applicant   string                 `yaml:"applicant"`
	Application *admission.Application `yaml:"application"`
}

// Encode renders a submitted application as YAML with a descriptive header.
func Encode(r *Receipt, app *admission.Application) ([]byte, error) {
	body, err := yaml.Marshal(document{
		Receipt:     *r,
		Applicant:   app.FullName(),
		Application: app,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal application: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(header(r))
	sb.WriteString("\n")
	sb.Write(body)
	return []byte(sb.String()), nil
}

func header(r *Receipt) string {
	return fmt.Sprintf(`# admitwiz application
# Reference: %s
# Flow: %s
# Submitted at: %s
`, r.Reference, r.Flow, r.SubmittedAt.Format(time.RFC3339))
}
