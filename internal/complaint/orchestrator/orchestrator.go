// internal/complaint/orchestrator/orchestrator.go
package orchestrator

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"tgrera-complaint-form/internal/common/errors"
	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/common/metrics"
	"tgrera-complaint-form/internal/common/observability"
	"tgrera-complaint-form/internal/common/validation"
	"tgrera-complaint-form/internal/complaint/annotator"
	"tgrera-complaint-form/internal/complaint/complaintid"
	"tgrera-complaint-form/internal/complaint/documents"
	"tgrera-complaint-form/internal/complaint/presenter"
	"tgrera-complaint-form/internal/complaint/validators"
	"tgrera-complaint-form/internal/form"
	"tgrera-complaint-form/internal/models"
)

const TaskType = "submit-complaint"

// ErrAlreadySubmitted matches, via errors.Is, the error returned by Submit
// once the form has been submitted.
var ErrAlreadySubmitted = &errors.StandardError{Code: errors.ErrCodeAlreadySubmitted}

// Dependencies are the collaborators of one form's pipeline.
type Dependencies struct {
	Form      form.Adapter
	Annotator *annotator.Annotator
	Documents *documents.Checker
	IDs       *complaintid.Generator
	Presenter *presenter.Presenter
	Surface   Surface
	Schema    *validation.SchemaValidator
	Obs       *observability.Observability
}

// Orchestrator runs the submit pipeline for one form. It is not safe for
// concurrent use.
type Orchestrator struct {
	config *Config
	deps   Dependencies
	logger logger.Logger

	state  State
	record *models.ComplaintRecord
}

func New(config *Config, deps Dependencies, log logger.Logger) *Orchestrator {
	if deps.Surface == nil {
		deps.Surface = &MemorySurface{}
	}
	return &Orchestrator{
		config: config,
		deps:   deps,
		logger: logger.ForComponent(log, "orchestrator").WithFields(map[string]interface{}{"taskType": TaskType}),
		state:  StateEditing,
	}
}

func (o *Orchestrator) State() State {
	return o.state
}

// Record is the submitted complaint, or nil while editing.
func (o *Orchestrator) Record() *models.ComplaintRecord {
	return o.record
}

// Submit runs every check, without short-circuiting, and on success issues a
// complaint ID and presents the assembled record. Validation failures are
// reported in the Outcome; the returned error is reserved for a repeated
// submission and for ID or record contract failures.
func (o *Orchestrator) Submit(ctx context.Context) (*Outcome, error) {
	if o.state == StateSubmitted {
		metrics.SubmissionsTotal.WithLabelValues(metrics.OutcomeAlreadySubmitted).Inc()
		return nil, errors.NewAlreadySubmittedError(o.record.ComplaintID)
	}

	start := time.Now()
	outcome := &Outcome{}

	fieldsOK := true
	for _, spec := range validators.SubmitOrder() {
		fieldsOK = o.runField(spec, outcome) && fieldsOK
	}

	docsOK := o.deps.Documents.ValidateMandatoryDocs()
	if !docsOK {
		outcome.Documents = o.deps.Documents.Unconfirmed()
		o.alert(outcome, AlertDocuments, "documents")
	}

	declared := o.deps.Form.IsChecked(form.FlagDeclarationAgree)
	if !declared {
		o.alert(outcome, AlertDeclaration, "declaration")
	}

	fieldsOK = o.runField(validators.Signature, outcome) && fieldsOK

	if !fieldsOK || !docsOK || !declared {
		outcome.ScrollTo = o.firstVisibleError(outcome)
		if outcome.ScrollTo != "" {
			o.deps.Surface.ScrollTo(outcome.ScrollTo)
		}
		label := failureLabel(fieldsOK, docsOK)
		o.finish(ctx, start, label)
		o.logger.Info("submission rejected", map[string]interface{}{
			"failedFields": outcome.FailedFields(),
			"alerts":       len(outcome.Alerts),
		})
		return outcome, nil
	}

	record, err := o.complete(ctx)
	if err != nil {
		o.finish(ctx, start, metrics.OutcomeError)
		return nil, err
	}

	confirmation := o.deps.Presenter.Present(record)
	o.deps.Surface.ShowConfirmation(confirmation)
	o.deps.Surface.HideForm()
	o.deps.Surface.SetProgress(100)
	o.deps.Surface.ScrollTo(SuccessAnchor)

	o.state = StateSubmitted
	o.record = record

	outcome.Submitted = true
	outcome.Record = record
	outcome.Confirmation = &confirmation
	outcome.ScrollTo = SuccessAnchor

	metrics.ProgressPercent.Observe(100)
	o.finish(ctx, start, metrics.OutcomeSubmitted)
	return outcome, nil
}

func (o *Orchestrator) runField(spec validators.FieldSpec, outcome *Outcome) bool {
	value := o.deps.Form.GetValue(spec.ID)
	if spec.ID == form.FieldPAN {
		value = strings.ToUpper(value)
		o.deps.Form.SetValue(spec.ID, value)
	}

	ok := o.deps.Annotator.Apply(spec.ID, spec.Validate(value), spec.ErrorMessage)
	result := models.ValidationResult{FieldID: spec.ID, IsValid: ok}
	if !ok {
		result.Message = spec.ErrorMessage
		metrics.ValidationFailuresTotal.WithLabelValues(spec.ID).Inc()
	}
	outcome.Results = append(outcome.Results, result)
	return ok
}

func (o *Orchestrator) alert(outcome *Outcome, message, kind string) {
	outcome.Alerts = append(outcome.Alerts, message)
	o.deps.Surface.Alert(message)
	metrics.AlertsTotal.WithLabelValues(kind).Inc()
}

// firstVisibleError is the first failed field that carries an inline message.
// Results are already in page order.
func (o *Orchestrator) firstVisibleError(outcome *Outcome) string {
	for _, r := range outcome.Results {
		if !r.IsValid && o.deps.Form.HasField(r.FieldID) {
			return r.FieldID
		}
	}
	return ""
}

func failureLabel(fieldsOK, docsOK bool) string {
	switch {
	case !fieldsOK:
		return metrics.OutcomeInvalidFields
	case !docsOK:
		return metrics.OutcomeMissingDocuments
	default:
		return metrics.OutcomeNoDeclaration
	}
}

func (o *Orchestrator) finish(ctx context.Context, start time.Time, label string) {
	metrics.SubmissionsTotal.WithLabelValues(label).Inc()
	o.deps.Obs.RecordSubmission(ctx, time.Since(start), label)
}

func (o *Orchestrator) complete(ctx context.Context) (*models.ComplaintRecord, error) {
	if o.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.Timeout)
		defer cancel()
	}

	issued, err := o.deps.IDs.Generate(ctx)
	if err != nil {
		o.logger.Error("complaint id generation failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	record := o.assemble(issued)

	if o.deps.Schema != nil {
		result, err := o.deps.Schema.Validate(record)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		if !result.Valid {
			details := strings.Join(result.GetErrorMessages(), "; ")
			o.logger.Error("complaint record failed contract check", map[string]interface{}{
				"complaintId": record.ComplaintID,
				"errors":      details,
			})
			return nil, errors.NewRecordSchemaInvalidError(details)
		}
	}

	o.dump(record)
	return record, nil
}

func (o *Orchestrator) assemble(issued complaintid.Issued) *models.ComplaintRecord {
	f := o.deps.Form
	text := func(id string) string { return strings.TrimSpace(f.GetValue(id)) }

	at := issued.At
	if o.config.Location != nil {
		at = at.In(o.config.Location)
	}

	compensation := f.GetValue(form.FieldCompensation)
	if compensation == "" {
		compensation = "0"
	}

	return &models.ComplaintRecord{
		ComplaintID:    issued.ID,
		SubmissionDate: at.Format(dateLayout),
		SubmissionTime: at.Format(timeLayout),
		Complainant: models.Complainant{
			FullName:    text(form.FieldFullName),
			FathersName: text(form.FieldFathersName),
			DOB:         f.GetValue(form.FieldDOB),
			Gender:      f.GetValue(form.FieldGender),
			Nationality: text(form.FieldNationality),
			Aadhaar:     text(form.FieldAadhaar),
			PAN:         text(form.FieldPAN),
			Mobile:      text(form.FieldMobile),
			AltMobile:   text(form.FieldAltMobile),
			Email:       text(form.FieldEmail),
			Address:     text(form.FieldAddress),
			City:        text(form.FieldCity),
			State:       f.GetValue(form.FieldState),
			PIN:         text(form.FieldPIN),
		},
		Project: models.Project{
			ProjectName:     text(form.FieldProjectName),
			RERARegNo:       text(form.FieldRERARegNo),
			PromoterName:    text(form.FieldPromoterName),
			BuilderAddress:  text(form.FieldBuilderAddress),
			BuilderContact:  text(form.FieldBuilderContact),
			BuilderEmail:    text(form.FieldBuilderEmail),
			ProjectLocation: text(form.FieldProjectLocation),
			PropertyType:    f.GetValue(form.FieldPropertyType),
			UnitNumber:      text(form.FieldUnitNumber),
			AgreementNo:     text(form.FieldAgreementNo),
			AgreementDate:   f.GetValue(form.FieldAgreementDate),
			TotalSaleValue:  f.GetValue(form.FieldTotalSaleValue),
			AmountPaid:      f.GetValue(form.FieldAmountPaid),
		},
		Grievance: models.Grievance{
			ComplaintCategory:  f.GetValue(form.FieldComplaintCategory),
			ExpectedPossession: f.GetValue(form.FieldExpectedPossession),
			CurrentStatus:      f.GetValue(form.FieldCurrentStatus),
			Description:        text(form.FieldDescription),
			Relief:             text(form.FieldRelief),
			Compensation:       compensation,
		},
		Docs:             o.deps.Documents.Collect(),
		DigitalSignature: text(form.FieldDigitalSignature),
	}
}

func (o *Orchestrator) dump(record *models.ComplaintRecord) {
	raw, err := json.Marshal(record)
	if err != nil {
		o.logger.Warn("complaint record not serialisable", map[string]interface{}{"error": err.Error()})
		return
	}
	o.logger.Info("TGRERA Complaint Submitted", map[string]interface{}{
		"complaintId": record.ComplaintID,
		"record":      string(raw),
	})
}
