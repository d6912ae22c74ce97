// internal/complaint/annotator/sink.go
package annotator

import "sort"

// ErrorSink surfaces field validity to the user.
type ErrorSink interface {
	Show(fieldID, message string)
	Clear(fieldID string)
}

type State string

const (
	StateNeutral State = "neutral"
	StateInvalid State = "invalid"
)

// FieldState is what a sink records for one field.
type FieldState struct {
	State   State  `json:"state"`
	Message string `json:"message,omitempty"`
}

// MemorySink keeps field states in a map. Fields never annotated read as
// neutral.
type MemorySink struct {
	fields map[string]FieldState
	order  []string
}

func NewMemorySink() *MemorySink {
	return &MemorySink{fields: make(map[string]FieldState)}
}

func (m *MemorySink) Show(fieldID, message string) {
	m.touch(fieldID)
	m.fields[fieldID] = FieldState{State: StateInvalid, Message: message}
}

func (m *MemorySink) Clear(fieldID string) {
	m.touch(fieldID)
	m.fields[fieldID] = FieldState{State: StateNeutral}
}

func (m *MemorySink) touch(fieldID string) {
	if _, ok := m.fields[fieldID]; !ok {
		m.order = append(m.order, fieldID)
	}
}

func (m *MemorySink) State(fieldID string) FieldState {
	if s, ok := m.fields[fieldID]; ok {
		return s
	}
	return FieldState{State: StateNeutral}
}

// Snapshot copies every annotated field.
func (m *MemorySink) Snapshot() map[string]FieldState {
	out := make(map[string]FieldState, len(m.fields))
	for k, v := range m.fields {
		out[k] = v
	}
	return out
}

// Invalid lists the fields currently showing a message, in the order they
// were first annotated.
func (m *MemorySink) Invalid() []string {
	var ids []string
	for _, id := range m.order {
		if m.fields[id].State == StateInvalid {
			ids = append(ids, id)
		}
	}
	return ids
}

// InvalidSorted is Invalid in lexical order, for stable output.
func (m *MemorySink) InvalidSorted() []string {
	ids := m.Invalid()
	sort.Strings(ids)
	return ids
}
