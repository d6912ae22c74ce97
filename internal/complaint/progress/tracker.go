// internal/complaint/progress/tracker.go
package progress

import (
	"math"
	"strings"

	"tgrera-complaint-form/internal/form"
)

// Observer receives the completion percentage.
type Observer interface {
	SetProgress(percent int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(percent int)

func (f ObserverFunc) SetProgress(percent int) { f(percent) }

// Tracker derives completion from the required fields of a form.
type Tracker struct {
	form       form.Adapter
	trackables []string
	observer   Observer
}

func NewTracker(f form.Adapter, trackables []string, observer Observer) *Tracker {
	return &Tracker{form: f, trackables: trackables, observer: observer}
}

// Attach recomputes on every input and change event of a trackable field.
func (t *Tracker) Attach() {
	for _, id := range t.trackables {
		t.form.OnEvent(id, form.EventInput, t.Update)
		t.form.OnEvent(id, form.EventChange, t.Update)
	}
}

// Update recomputes and reflects the percentage.
func (t *Tracker) Update() {
	p := t.Percent()
	if t.observer != nil {
		t.observer.SetProgress(p)
	}
}

// Percent is round(filled / total * 100). An empty trackable set is 0.
func (t *Tracker) Percent() int {
	if len(t.trackables) == 0 {
		return 0
	}
	filled := 0
	for _, id := range t.trackables {
		if t.filled(id) {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(t.trackables)) * 100))
}

func (t *Tracker) filled(id string) bool {
	if t.form.HasFlag(id) {
		return t.form.IsChecked(id)
	}
	return strings.TrimSpace(t.form.GetValue(id)) != ""
}
