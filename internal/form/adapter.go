// internal/form/adapter.go
package form

// EventKind names a UI event delivered to a field.
type EventKind string

const (
	EventInput  EventKind = "input"
	EventChange EventKind = "change"
	EventBlur   EventKind = "blur"
)

// ParseEventKind accepts the kinds a client may dispatch.
func ParseEventKind(s string) (EventKind, bool) {
	switch k := EventKind(s); k {
	case EventInput, EventChange, EventBlur:
		return k, true
	}
	return "", false
}

type Listener func()

// Adapter is everything the complaint pipeline knows about a form. Checkboxes
// are addressed by the same identifier space as fields.
type Adapter interface {
	GetValue(fieldID string) string
	IsChecked(flag string) bool
	SetValue(fieldID, value string)
	OnEvent(fieldID string, kind EventKind, fn Listener)
	HasField(fieldID string) bool
	HasFlag(flag string) bool
}
