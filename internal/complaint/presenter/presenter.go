// internal/complaint/presenter/presenter.go
package presenter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const PrintLabel = "🖨️ Print / Save Acknowledgement"

// Confirmation is the acknowledgement shown after a successful submission.
type Confirmation struct {
	ComplaintID         string `json:"complaintId"`
	Complainant         string `json:"complainant"`
	Project             string `json:"project"`
	Category            string `json:"category"`
	DateTime            string `json:"dateTime"`
	Email               string `json:"email"`
	ConfirmationMinutes int    `json:"confirmationMinutes"`
	PrintLabel          string `json:"printLabel"`
}

// Notice is the follow-up line shown under the confirmation table.
func (c Confirmation) Notice() string {
	return fmt.Sprintf("A confirmation email will be sent to your registered email within %d minutes.", c.ConfirmationMinutes)
}

type Presenter struct {
	minutes int
	tmpl    *template.Template
	logger  logger.Logger
}

func New(confirmationMinutes int, log logger.Logger) *Presenter {
	return &Presenter{
		minutes: confirmationMinutes,
		tmpl:    template.Must(template.ParseFS(templateFS, "templates/*.html")),
		logger:  logger.ForComponent(log, "presenter"),
	}
}

// Present projects a record into its confirmation. The record is not read
// beyond the displayed fields.
func (p *Presenter) Present(record *models.ComplaintRecord) Confirmation {
	c := Confirmation{
		ComplaintID:         record.ComplaintID,
		Complainant:         record.FullName,
		Project:             record.ProjectName,
		Category:            record.ComplaintCategory,
		DateTime:            record.SubmissionDate + " at " + record.SubmissionTime,
		Email:               record.Email,
		ConfirmationMinutes: p.minutes,
		PrintLabel:          PrintLabel,
	}
	p.logger.Info("confirmation presented", map[string]interface{}{"complaintId": c.ComplaintID})
	return c
}

func (p *Presenter) Render(w io.Writer, c Confirmation) error {
	return p.tmpl.ExecuteTemplate(w, "confirmation", c)
}

// RenderHTML renders the confirmation for embedding in a page.
func (p *Presenter) RenderHTML(c Confirmation) (template.HTML, error) {
	var buf bytes.Buffer
	if err := p.Render(&buf, c); err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}
	return template.HTML(buf.String()), nil
}
