package session

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"
	"testing"
	"time"

	"tgrera-complaint-form/internal/common/errors"
	"tgrera-complaint-form/internal/common/logger"
	"tgrera-complaint-form/internal/common/validation"
	"tgrera-complaint-form/internal/complaint/annotator"
	"tgrera-complaint-form/internal/complaint/complaintid"
	"tgrera-complaint-form/internal/complaint/orchestrator"
	"tgrera-complaint-form/internal/complaint/presenter"
	"tgrera-complaint-form/internal/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T) *Factory {
	t.Helper()
	log := logger.NewTestLogger(t)
	schema, err := validation.NewComplaintRecordValidator()
	require.NoError(t, err)
	return &Factory{
		Config:    &orchestrator.Config{Location: time.UTC, Timeout: time.Second},
		IDs:       complaintid.NewGenerator(log),
		Presenter: presenter.New(5, log),
		Schema:    schema,
		Logger:    log,
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func validPost() (map[string]string, map[string]bool) {
	values := map[string]string{
		form.FieldFullName:          "Jane Doe",
		form.FieldAadhaar:           "1234 5678 9012",
		form.FieldMobile:            "9876543210",
		form.FieldEmail:             "a@b.com",
		form.FieldPIN:               "500032",
		form.FieldProjectName:       "Lake View",
		form.FieldComplaintCategory: "Delay in Possession",
		form.FieldDescription:       strings.Repeat("x", 100),
		form.FieldDigitalSignature:  "Jane Doe",
	}
	checks := map[string]bool{
		form.DocAadhaar: true, form.DocPAN: true, form.DocAgreement: true, form.DocReceipts: true,
		form.FlagDeclarationAgree: true,
	}
	return values, checks
}

func TestSession_ApplyBlur(t *testing.T) {
	sess := newTestFactory(t).Build("s1")

	snap, err := sess.Apply(context.Background(), Event{FieldID: form.FieldMobile, Kind: "blur", Value: strPtr("12")})
	require.NoError(t, err)

	got := snap.Fields[form.FieldMobile]
	assert.Equal(t, annotator.StateInvalid, got.State)
	assert.Equal(t, annotator.BorderInvalid, got.Style.BorderColor)
	assert.Equal(t, "editing", snap.State)

	snap, err = sess.Apply(context.Background(), Event{FieldID: form.FieldMobile, Kind: "blur", Value: strPtr("9123456780")})
	require.NoError(t, err)
	assert.Zero(t, snap.Progress)
}

func TestSession_ApplyProgressAndHint(t *testing.T) {
	sess := newTestFactory(t).Build("s1")
	ctx := context.Background()

	snap, err := sess.Apply(ctx, Event{FieldID: form.FieldDescription, Kind: "input", Value: strPtr("too short")})
	require.NoError(t, err)
	assert.Greater(t, snap.Progress, 0)
	assert.Equal(t, "⚠️ Minimum 100 characters required. (9/100)", snap.Hints[form.FieldDescription].Text)

	snap, err = sess.Apply(ctx, Event{FieldID: form.DocAadhaar, Kind: "change", Checked: boolPtr(true)})
	require.NoError(t, err)
	first := snap.Progress

	snap, err = sess.Apply(ctx, Event{FieldID: form.DocAadhaar, Kind: "change", Checked: boolPtr(false)})
	require.NoError(t, err)
	assert.Less(t, snap.Progress, first)
}

func TestSession_ApplyRejectsBadEvents(t *testing.T) {
	sess := newTestFactory(t).Build("s1")

	_, err := sess.Apply(context.Background(), Event{FieldID: form.FieldMobile, Kind: "submit"})
	assert.Equal(t, errors.ErrCodeInvalidEvent, errors.Normalize(err).Code)

	_, err = sess.Apply(context.Background(), Event{FieldID: "ghost", Kind: "blur"})
	assert.Equal(t, errors.ErrCodeInvalidEvent, errors.Normalize(err).Code)
}

func TestSession_SubmitAndView(t *testing.T) {
	sess := newTestFactory(t).Build("s1")
	values, checks := validPost()

	outcome, err := sess.Submit(context.Background(), values, checks)
	require.NoError(t, err)
	require.True(t, outcome.Submitted)

	view := sess.View()
	assert.True(t, view.Submitted)
	require.NotNil(t, view.Confirmation)
	assert.Equal(t, outcome.Record.ComplaintID, view.Confirmation.ComplaintID)
	assert.Equal(t, 100, view.Progress)
	assert.Equal(t, orchestrator.SuccessAnchor, view.ScrollTo)
	assert.Empty(t, sess.View().ScrollTo)

	_, err = sess.Submit(context.Background(), values, checks)
	assert.True(t, stderrors.Is(err, orchestrator.ErrAlreadySubmitted))

	_, err = sess.Apply(context.Background(), Event{FieldID: form.FieldMobile, Kind: "blur"})
	assert.True(t, stderrors.Is(err, orchestrator.ErrAlreadySubmitted))
}

func TestSession_SubmitFailureView(t *testing.T) {
	sess := newTestFactory(t).Build("s1")
	values, checks := validPost()
	values[form.FieldPIN] = "12"
	delete(checks, form.FlagDeclarationAgree)

	outcome, err := sess.Submit(context.Background(), values, checks)
	require.NoError(t, err)
	assert.False(t, outcome.Submitted)

	view := sess.View()
	assert.Equal(t, []string{orchestrator.AlertDeclaration}, view.Alerts)
	assert.Equal(t, form.FieldPIN, view.ScrollTo)
	assert.Equal(t, "12", view.Values[form.FieldPIN])
	assert.False(t, view.Checked[form.FlagDeclarationAgree])
	assert.Equal(t, annotator.StateInvalid, view.Fields[form.FieldPIN].State)

	again := sess.View()
	assert.Empty(t, again.Alerts)
}

func TestSession_ConcurrentEvents(t *testing.T) {
	sess := newTestFactory(t).Build("s1")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = sess.Apply(context.Background(), Event{FieldID: form.FieldCity, Kind: "input", Value: strPtr("Hyderabad")})
			_ = sess.View()
		}()
	}
	wg.Wait()
	assert.Equal(t, "Hyderabad", sess.View().Values[form.FieldCity])
}

func TestStore_Lifecycle(t *testing.T) {
	store := NewStore(newTestFactory(t), time.Minute, logger.NewTestLogger(t))
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	sess := store.Create()
	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	same, created := store.GetOrCreate(sess.ID)
	assert.False(t, created)
	assert.Same(t, sess, same)

	now = now.Add(2 * time.Minute)
	_, err = store.Get(sess.ID)
	assert.Equal(t, errors.ErrCodeSessionNotFound, errors.Normalize(err).Code)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 0, store.Len())

	fresh, created := store.GetOrCreate(sess.ID)
	assert.True(t, created)
	assert.NotEqual(t, sess.ID, fresh.ID)
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	store := NewStore(newTestFactory(t), time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
