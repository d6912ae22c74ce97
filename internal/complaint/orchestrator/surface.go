// internal/complaint/orchestrator/surface.go
package orchestrator

import "tgrera-complaint-form/internal/complaint/presenter"

// Surface is the page the orchestrator drives besides inline errors.
type Surface interface {
	Alert(message string)
	HideForm()
	SetProgress(percent int)
	ScrollTo(anchor string)
	ShowConfirmation(c presenter.Confirmation)
}

// MemorySurface records what a page would show.
type MemorySurface struct {
	Alerts       []string
	FormHidden   bool
	Progress     int
	Anchor       string
	Confirmation *presenter.Confirmation
}

var _ Surface = (*MemorySurface)(nil)

func (m *MemorySurface) Alert(message string) { m.Alerts = append(m.Alerts, message) }

func (m *MemorySurface) HideForm() { m.FormHidden = true }

func (m *MemorySurface) SetProgress(percent int) { m.Progress = percent }

func (m *MemorySurface) ScrollTo(anchor string) { m.Anchor = anchor }

func (m *MemorySurface) ShowConfirmation(c presenter.Confirmation) { m.Confirmation = &c }

// TakeAlerts returns pending alerts and forgets them.
func (m *MemorySurface) TakeAlerts() []string {
	a := m.Alerts
	m.Alerts = nil
	return a
}

// TakeAnchor returns the pending scroll target and forgets it.
func (m *MemorySurface) TakeAnchor() string {
	a := m.Anchor
	m.Anchor = ""
	return a
}
