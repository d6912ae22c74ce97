// internal/complaint/livecheck/hint.go
package livecheck

import (
	"fmt"

	"tgrera-complaint-form/internal/complaint/validators"
)

const (
	HintShortColor = "#c0392b"
	HintOKColor    = "#27ae60"
)

// HintState is the character counter shown under the description.
type HintState struct {
	FieldID string `json:"fieldId"`
	Count   int    `json:"count"`
	Color   string `json:"color"`
	Text    string `json:"text"`
}

func (h *HintState) update(value string) {
	h.Count = validators.DescriptionLength(value)
	if h.Count < validators.MinDescriptionLength {
		h.Color = HintShortColor
		h.Text = fmt.Sprintf("⚠️ Minimum %d characters required. (%d/%d)",
			validators.MinDescriptionLength, h.Count, validators.MinDescriptionLength)
		return
	}
	h.Color = HintOKColor
	h.Text = fmt.Sprintf("✅ %d characters — Good description!", h.Count)
}

// Hints owns one HintState per field. A state is created on first update
// and reused afterwards.
type Hints struct {
	states map[string]*HintState
}

func NewHints() *Hints {
	return &Hints{states: make(map[string]*HintState)}
}

func (h *Hints) Update(fieldID, value string) *HintState {
	st, ok := h.states[fieldID]
	if !ok {
		st = &HintState{FieldID: fieldID}
		h.states[fieldID] = st
	}
	st.update(value)
	return st
}

func (h *Hints) Get(fieldID string) (*HintState, bool) {
	st, ok := h.states[fieldID]
	return st, ok
}

// Snapshot copies every hint.
func (h *Hints) Snapshot() map[string]HintState {
	out := make(map[string]HintState, len(h.states))
	for id, st := range h.states {
		out[id] = *st
	}
	return out
}
