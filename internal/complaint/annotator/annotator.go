// internal/complaint/annotator/annotator.go
package annotator

import (
	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/form"
)

// WarningMarker prefixes every inline error message.
const WarningMarker = "⚠️ "

// Annotator is the only path by which field validity reaches the user.
type Annotator struct {
	form   form.Adapter
	sink   ErrorSink
	logger logger.Logger
}

func New(f form.Adapter, sink ErrorSink, log logger.Logger) *Annotator {
	return &Annotator{
		form:   f,
		sink:   sink,
		logger: logger.ForComponent(log, "annotator"),
	}
}

// ShowError marks fieldID invalid with message. Absent fields are ignored.
func (a *Annotator) ShowError(fieldID, message string) {
	if !a.form.HasField(fieldID) {
		a.logger.Debug("show skipped, field absent", map[string]interface{}{"fieldId": fieldID})
		return
	}
	a.sink.Clear(fieldID)
	a.sink.Show(fieldID, WarningMarker+message)
}

// ClearError returns fieldID to neutral. Absent fields are ignored.
func (a *Annotator) ClearError(fieldID string) {
	if !a.form.HasField(fieldID) {
		return
	}
	a.sink.Clear(fieldID)
}

// Apply shows or clears according to ok and reports ok.
func (a *Annotator) Apply(fieldID string, ok bool, message string) bool {
	if ok {
		a.ClearError(fieldID)
	} else {
		a.ShowError(fieldID, message)
	}
	return ok
}
