// internal/session/factory.go
package session

import (
	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/common/observability"
	"tgrera-complaint-form/internal/common/validation"
	"tgrera-complaint-form/internal/complaint/annotator"
	"tgrera-complaint-form/internal/complaint/complaintid"
	"tgrera-complaint-form/internal/complaint/documents"
	"tgrera-complaint-form/internal/complaint/livecheck"
	"tgrera-complaint-form/internal/complaint/orchestrator"
	"tgrera-complaint-form/internal/complaint/presenter"
	"tgrera-complaint-form/internal/complaint/progress"
	"tgrera-complaint-form/internal/form"
)

// Factory builds the per-session pipeline around shared, concurrency-safe
// collaborators.
type Factory struct {
	Config    *orchestrator.Config
	IDs       *complaintid.Generator
	Presenter *presenter.Presenter
	Schema    *validation.SchemaValidator
	Obs       *observability.Observability
	Logger    logger.Logger
}

// Build wires a fresh form and its pipeline.
func (f *Factory) Build(id string) *Session {
	log := logger.ForComponent(f.Logger, "session").WithFields(map[string]interface{}{"sessionId": id})

	fm := form.NewComplaintForm()
	sink := annotator.NewRenderedSink()
	labels := documents.LabelColors{}
	hints := livecheck.NewHints()
	surface := &orchestrator.MemorySurface{}
	ann := annotator.New(fm, sink, log)

	tracker := progress.NewTracker(fm, form.Trackables(fm.Fields()), surface)
	tracker.Attach()
	livecheck.New(fm, ann, hints, log).Attach()

	orch := orchestrator.New(f.Config, orchestrator.Dependencies{
		Form:      fm,
		Annotator: ann,
		Documents: documents.NewChecker(fm, labels, form.MandatoryDocs, f.Config.StrictDocumentCheck, log),
		IDs:       f.IDs,
		Presenter: f.Presenter,
		Surface:   surface,
		Schema:    f.Schema,
		Obs:       f.Obs,
	}, log)

	return &Session{
		ID:      id,
		form:    fm,
		sink:    sink,
		labels:  labels,
		hints:   hints,
		surface: surface,
		tracker: tracker,
		orch:    orch,
		obs:     f.Obs,
		logger:  log,
	}
}
