// internal/complaint/annotator/rendered.go
package annotator

const (
	BorderInvalid     = "#c0392b"
	BackgroundInvalid = "#fff5f5"
	BorderNeutral     = "#ccc"
	BackgroundNeutral = "#fdfdfd"
)

// Style is the visual treatment of a rendered field.
type Style struct {
	BorderColor string `json:"borderColor"`
	Background  string `json:"background"`
}

// RenderedField is what the HTML surface draws next to a field.
type RenderedField struct {
	FieldState
	Style Style `json:"style"`
}

// RenderedSink records field states together with their styling.
type RenderedSink struct {
	*MemorySink
}

func NewRenderedSink() *RenderedSink {
	return &RenderedSink{MemorySink: NewMemorySink()}
}

func styleFor(s State) Style {
	if s == StateInvalid {
		return Style{BorderColor: BorderInvalid, Background: BackgroundInvalid}
	}
	return Style{BorderColor: BorderNeutral, Background: BackgroundNeutral}
}

// Field returns the rendering of one field. Untouched fields render with no
// inline style.
func (r *RenderedSink) Field(fieldID string) RenderedField {
	st, ok := r.fields[fieldID]
	if !ok {
		return RenderedField{FieldState: FieldState{State: StateNeutral}}
	}
	return RenderedField{FieldState: st, Style: styleFor(st.State)}
}

// Render returns every annotated field.
func (r *RenderedSink) Render() map[string]RenderedField {
	out := make(map[string]RenderedField, len(r.fields))
	for id := range r.fields {
		out[id] = r.Field(id)
	}
	return out
}

// FirstError is the first field showing a message, or "".
func (r *RenderedSink) FirstError(pageOrder []string) string {
	for _, id := range pageOrder {
		if r.fields[id].State == StateInvalid {
			return id
		}
	}
	return ""
}
