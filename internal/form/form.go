// internal/form/form.go
package form

// Form is an in-memory Adapter. It is not safe for concurrent use; callers
// serialise events the way a browser event queue would.
type Form struct {
	defs      []FieldDef
	index     map[string]FieldDef
	values    map[string]string
	checked   map[string]bool
	listeners map[string]map[EventKind][]Listener
}

var _ Adapter = (*Form)(nil)

// New builds a form holding exactly the given fields.
func New(defs []FieldDef) *Form {
	f := &Form{
		defs:      defs,
		index:     make(map[string]FieldDef, len(defs)),
		values:    make(map[string]string),
		checked:   make(map[string]bool),
		listeners: make(map[string]map[EventKind][]Listener),
	}
	for _, d := range defs {
		f.index[d.ID] = d
	}
	return f
}

// NewComplaintForm builds a form with the full complaint catalogue.
func NewComplaintForm() *Form {
	return New(Catalogue())
}

// Without returns the catalogue minus the named identifiers.
func Without(defs []FieldDef, ids ...string) []FieldDef {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := make([]FieldDef, 0, len(defs))
	for _, d := range defs {
		if !drop[d.ID] {
			out = append(out, d)
		}
	}
	return out
}

func (f *Form) Fields() []FieldDef {
	return f.defs
}

func (f *Form) Field(id string) (FieldDef, bool) {
	d, ok := f.index[id]
	return d, ok
}

func (f *Form) GetValue(fieldID string) string {
	return f.values[fieldID]
}

func (f *Form) SetValue(fieldID, value string) {
	if d, ok := f.index[fieldID]; ok && d.Kind != KindCheckbox {
		f.values[fieldID] = value
	}
}

func (f *Form) IsChecked(flag string) bool {
	return f.checked[flag]
}

func (f *Form) SetChecked(flag string, checked bool) {
	if d, ok := f.index[flag]; ok && d.Kind == KindCheckbox {
		f.checked[flag] = checked
	}
}

func (f *Form) HasField(fieldID string) bool {
	_, ok := f.index[fieldID]
	return ok
}

func (f *Form) HasFlag(flag string) bool {
	d, ok := f.index[flag]
	return ok && d.Kind == KindCheckbox
}

func (f *Form) OnEvent(fieldID string, kind EventKind, fn Listener) {
	if !f.HasField(fieldID) || fn == nil {
		return
	}
	byKind, ok := f.listeners[fieldID]
	if !ok {
		byKind = make(map[EventKind][]Listener)
		f.listeners[fieldID] = byKind
	}
	byKind[kind] = append(byKind[kind], fn)
}

// Dispatch runs the listeners registered for fieldID and kind in
// registration order. It reports whether the field exists.
func (f *Form) Dispatch(fieldID string, kind EventKind) bool {
	if !f.HasField(fieldID) {
		return false
	}
	for _, fn := range f.listeners[fieldID][kind] {
		fn()
	}
	return true
}

// Fill replaces every value and checkbox state without dispatching events.
// Fields missing from the maps become empty or unchecked.
func (f *Form) Fill(values map[string]string, checks map[string]bool) {
	for _, d := range f.defs {
		if d.Kind == KindCheckbox {
			f.checked[d.ID] = checks[d.ID]
			continue
		}
		f.values[d.ID] = values[d.ID]
	}
}

// Values returns a copy of the current text values.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}
