package progress

import (
	"testing"

	"tgrera-complaint-form/internal/form"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Percent(t *testing.T) {
	defs := []form.FieldDef{
		{ID: "a", Kind: form.KindText, Required: true},
		{ID: "b", Kind: form.KindText, Required: true},
		{ID: "c", Kind: form.KindCheckbox, Required: true},
	}
	f := form.New(defs)
	var got []int
	tr := NewTracker(f, form.Trackables(defs), ObserverFunc(func(p int) { got = append(got, p) }))
	tr.Attach()

	f.SetValue("a", "x")
	f.Dispatch("a", form.EventInput)

	f.SetValue("b", "   ")
	f.Dispatch("b", form.EventInput)

	f.SetChecked("c", true)
	f.Dispatch("c", form.EventChange)

	f.SetValue("b", "y")
	f.Dispatch("b", form.EventChange)

	f.SetValue("a", "")
	f.Dispatch("a", form.EventInput)

	assert.Equal(t, []int{33, 33, 67, 100, 67}, got)
}

func TestTracker_IgnoresBlurAndUntracked(t *testing.T) {
	defs := []form.FieldDef{
		{ID: "a", Kind: form.KindText, Required: true},
		{ID: "opt", Kind: form.KindText},
	}
	f := form.New(defs)
	calls := 0
	tr := NewTracker(f, form.Trackables(defs), ObserverFunc(func(int) { calls++ }))
	tr.Attach()

	f.Dispatch("a", form.EventBlur)
	f.Dispatch("opt", form.EventInput)
	assert.Equal(t, 0, calls)
}

func TestTracker_FullCatalogue(t *testing.T) {
	f := form.NewComplaintForm()
	trackables := form.Trackables(f.Fields())
	tr := NewTracker(f, trackables, nil)

	assert.Equal(t, 0, tr.Percent())

	for _, id := range trackables {
		if f.HasFlag(id) {
			f.SetChecked(id, true)
		} else {
			f.SetValue(id, "x")
		}
	}
	assert.Equal(t, 100, tr.Percent())
	assert.NotPanics(t, tr.Update)
}

func TestTracker_Empty(t *testing.T) {
	tr := NewTracker(form.New(nil), nil, nil)
	assert.Equal(t, 0, tr.Percent())
}
