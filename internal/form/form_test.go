package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue_Shape(t *testing.T) {
	defs := Catalogue()

	seen := map[string]bool{}
	docs := 0
	for _, d := range defs {
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
		if d.Section == SectionDocuments {
			docs++
		}
	}

	assert.Equal(t, 10, docs)
	for _, id := range MandatoryDocs {
		assert.True(t, seen[id], id)
	}
	for _, id := range []string{FieldAadhaar, FieldPAN, FieldMobile, FieldEmail, FieldPIN, FieldDescription, FieldDigitalSignature, FlagDeclarationAgree} {
		assert.True(t, seen[id], id)
	}
}

func TestTrackables(t *testing.T) {
	ids := Trackables(Catalogue())

	assert.Contains(t, ids, FieldAadhaar)
	assert.Contains(t, ids, DocReceipts)
	assert.Contains(t, ids, FlagDeclarationAgree)
	assert.NotContains(t, ids, FieldPAN)
	assert.NotContains(t, ids, FieldCompensation)
	assert.NotContains(t, ids, DocPhotos)
}

func TestGroups(t *testing.T) {
	groups := Groups(Catalogue())
	require.Len(t, groups, 5)
	assert.Equal(t, SectionComplainant, groups[0].Section)
	assert.Equal(t, "Declaration", groups[4].Title)
	assert.Len(t, groups[3].Fields, 10)
}

func TestForm_ValuesAndFlags(t *testing.T) {
	f := NewComplaintForm()

	f.SetValue(FieldPAN, "abcde1234f")
	f.SetValue("nonexistent", "x")
	f.SetChecked(DocPAN, true)
	f.SetChecked(FieldPAN, true)

	assert.Equal(t, "abcde1234f", f.GetValue(FieldPAN))
	assert.Equal(t, "", f.GetValue("nonexistent"))
	assert.True(t, f.IsChecked(DocPAN))
	assert.False(t, f.IsChecked(FieldPAN))

	assert.True(t, f.HasField(DocPAN))
	assert.True(t, f.HasFlag(DocPAN))
	assert.False(t, f.HasFlag(FieldPAN))
	assert.False(t, f.HasField("nonexistent"))
}

func TestForm_DispatchOrder(t *testing.T) {
	f := NewComplaintForm()
	var calls []string

	f.OnEvent(FieldMobile, EventBlur, func() { calls = append(calls, "first") })
	f.OnEvent(FieldMobile, EventBlur, func() { calls = append(calls, "second") })
	f.OnEvent(FieldMobile, EventInput, func() { calls = append(calls, "input") })
	f.OnEvent("nonexistent", EventBlur, func() { calls = append(calls, "ghost") })

	assert.True(t, f.Dispatch(FieldMobile, EventBlur))
	assert.False(t, f.Dispatch("nonexistent", EventBlur))
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestForm_Fill(t *testing.T) {
	f := NewComplaintForm()
	f.SetValue(FieldCity, "Hyderabad")
	f.SetChecked(DocPhotos, true)

	f.Fill(map[string]string{FieldFullName: "Jane Doe"}, map[string]bool{DocAadhaar: true})

	assert.Equal(t, "Jane Doe", f.GetValue(FieldFullName))
	assert.Equal(t, "", f.GetValue(FieldCity))
	assert.True(t, f.IsChecked(DocAadhaar))
	assert.False(t, f.IsChecked(DocPhotos))
}

func TestWithout(t *testing.T) {
	f := New(Without(Catalogue(), DocReceipts))
	assert.False(t, f.HasFlag(DocReceipts))
	assert.True(t, f.HasFlag(DocAadhaar))
}

func TestParseEventKind(t *testing.T) {
	k, ok := ParseEventKind("blur")
	assert.True(t, ok)
	assert.Equal(t, EventBlur, k)

	_, ok = ParseEventKind("submit")
	assert.False(t, ok)
}
