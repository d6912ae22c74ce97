// internal/session/session.go
package session

import (
	"context"
	"sync"

	"tgrera-complaint-form/internal/common/errors"
	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/common/observability"
	"tgrera-complaint-form/internal/complaint/annotator"
	"tgrera-complaint-form/internal/complaint/documents"
	"tgrera-complaint-form/internal/complaint/livecheck"
	"tgrera-complaint-form/internal/complaint/orchestrator"
	"tgrera-complaint-form/internal/complaint/presenter"
	"tgrera-complaint-form/internal/complaint/progress"
	"tgrera-complaint-form/internal/form"
)

// Event is one UI event sent by the browser.
type Event struct {
	FieldID string  `json:"fieldId" binding:"required"`
	Kind    string  `json:"kind" binding:"required"`
	Value   *string `json:"value,omitempty"`
	Checked *bool   `json:"checked,omitempty"`
}

// Snapshot is the live state of a form after an event.
type Snapshot struct {
	State    string                             `json:"state"`
	Progress int                                `json:"progress"`
	Fields   map[string]annotator.RenderedField `json:"fields"`
	Hints    map[string]livecheck.HintState     `json:"hints"`
	Labels   map[string]string                  `json:"labels,omitempty"`
	// Value is the stored value of the event's field after listeners ran.
	Value *string `json:"value,omitempty"`
}

// View is everything needed to render the page once.
type View struct {
	Snapshot
	Values       map[string]string
	Checked      map[string]bool
	Alerts       []string
	ScrollTo     string
	Submitted    bool
	Confirmation *presenter.Confirmation
}

// Session is one browser's form. Its mutex serialises events the way the
// browser event queue does.
type Session struct {
	ID string

	mu      sync.Mutex
	form    *form.Form
	sink    *annotator.RenderedSink
	labels  documents.LabelColors
	hints   *livecheck.Hints
	surface *orchestrator.MemorySurface
	tracker *progress.Tracker
	orch    *orchestrator.Orchestrator
	obs     *observability.Observability
	logger  logger.Logger
}

// Apply stores the event's value on the form and dispatches it.
func (s *Session) Apply(ctx context.Context, ev Event) (*Snapshot, error) {
	kind, ok := form.ParseEventKind(ev.Kind)
	if !ok {
		return nil, errors.NewInvalidEventError("unknown event kind " + ev.Kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orch.State() == orchestrator.StateSubmitted {
		return nil, errors.NewAlreadySubmittedError(s.orch.Record().ComplaintID)
	}
	if !s.form.HasField(ev.FieldID) {
		return nil, errors.NewInvalidEventError("unknown field " + ev.FieldID)
	}

	if s.form.HasFlag(ev.FieldID) {
		if ev.Checked != nil {
			s.form.SetChecked(ev.FieldID, *ev.Checked)
		}
	} else if ev.Value != nil {
		s.form.SetValue(ev.FieldID, *ev.Value)
	}

	s.form.Dispatch(ev.FieldID, kind)
	s.obs.RecordEvent(ctx, string(kind))

	snap := s.snapshot()
	if !s.form.HasFlag(ev.FieldID) {
		v := s.form.GetValue(ev.FieldID)
		snap.Value = &v
	}
	return &snap, nil
}

// Submit replaces the form contents with a full post and runs the pipeline.
func (s *Session) Submit(ctx context.Context, values map[string]string, checks map[string]bool) (*orchestrator.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orch.State() == orchestrator.StateEditing {
		s.form.Fill(values, checks)
		s.tracker.Update()
	}

	outcome, err := s.orch.Submit(ctx)
	if err != nil {
		s.logger.Warn("submission error", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	return outcome, nil
}

// View renders the session and consumes pending alerts and scroll target.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	checked := make(map[string]bool)
	for _, d := range s.form.Fields() {
		if d.Kind == form.KindCheckbox {
			checked[d.ID] = s.form.IsChecked(d.ID)
		}
	}

	return View{
		Snapshot:     s.snapshot(),
		Values:       s.form.Values(),
		Checked:      checked,
		Alerts:       s.surface.TakeAlerts(),
		ScrollTo:     s.surface.TakeAnchor(),
		Submitted:    s.orch.State() == orchestrator.StateSubmitted,
		Confirmation: s.surface.Confirmation,
	}
}

func (s *Session) State() orchestrator.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orch.State()
}

func (s *Session) snapshot() Snapshot {
	labels := make(map[string]string, len(s.labels))
	for k, v := range s.labels {
		labels[k] = v
	}
	return Snapshot{
		State:    s.orch.State().String(),
		Progress: s.surface.Progress,
		Fields:   s.sink.Render(),
		Hints:    s.hints.Snapshot(),
		Labels:   labels,
	}
}
