// internal/complaint/orchestrator/models.go
package orchestrator

import (
	"tgrera-complaint-form/internal/common/errors"
	"tgrera-complaint-form/internal/complaint/presenter"
	"tgrera-complaint-form/internal/models"
)

type State int

const (
	StateEditing State = iota
	StateSubmitted
)

func (s State) String() string {
	if s == StateSubmitted {
		return "submitted"
	}
	return "editing"
}

const (
	AlertDocuments   = "⚠️ Please confirm all 4 mandatory documents are available."
	AlertDeclaration = "⚠️ Please agree to the declaration before submitting."
)

// SuccessAnchor is where the page scrolls after a successful submission.
const SuccessAnchor = "successMessage"

// en-IN renderings of the submission instant.
const (
	dateLayout = "2/1/2006"
	timeLayout = "3:04:05 pm"
)

// Outcome reports one submit attempt.
type Outcome struct {
	Submitted    bool                      `json:"submitted"`
	Record       *models.ComplaintRecord   `json:"record,omitempty"`
	Confirmation *presenter.Confirmation   `json:"confirmation,omitempty"`
	Results      []models.ValidationResult `json:"results"`
	Alerts       []string                  `json:"alerts,omitempty"`
	ScrollTo     string                    `json:"scrollTo,omitempty"`
	// Documents lists the mandatory document flags left unchecked.
	Documents    []string                  `json:"documents,omitempty"`
}

// FailedFields lists fields whose validator rejected the value.
func (o *Outcome) FailedFields() []string {
	var ids []string
	for _, r := range o.Results {
		if !r.IsValid {
			ids = append(ids, r.FieldID)
		}
	}
	return ids
}

// Err summarises a rejected outcome as a StandardError: invalid fields first,
// then documents, then the declaration. It is nil once submitted.
func (o *Outcome) Err() error {
	if o.Submitted {
		return nil
	}
	if failed := o.FailedFields(); len(failed) > 0 {
		return errors.NewValidationFailedError(failed).WithMetadata("alerts", len(o.Alerts))
	}
	for _, a := range o.Alerts {
		if a == AlertDocuments {
			return errors.NewDocumentsIncompleteError(o.Documents)
		}
	}
	return errors.NewDeclarationMissingError()
}
