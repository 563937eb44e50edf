package client

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubRegisterer struct {
	calls    int
	payloads []RegisterPayload
	err      error
}

func (s *stubRegisterer) Register(ctx context.Context, payload RegisterPayload) error {
	s.calls++
	s.payloads = append(s.payloads, payload)
	return s.err
}

func fillValidDraft(w *Wizard) {
	w.SetField(FieldFullName, "Aisha Bello")
	w.SetField(FieldPhone, "08030000000")
	w.SetField(FieldEmail, "aisha@freedomradio.com.ng")
	w.SetField(FieldUsername, "aisha_bello")
	w.SetField(FieldPassword, "secret1")
	w.SetField(FieldConfirmPassword, "secret1")
	w.SetField(FieldRole, "accountant")
	w.SetStationCodes([]string{"FR-KAN", "DL-KAN"})
}

func TestWizard_StartsAtStepOneWithDefaults(t *testing.T) {
	w := NewWizard(&stubRegisterer{})

	if w.Step() != 1 {
		t.Fatalf("expected step 1, got %d", w.Step())
	}
	form := w.Form()
	if form.Role != "viewer" || form.Status != "active" {
		t.Fatalf("unexpected defaults: %+v", form)
	}
}

func TestWizard_NextBlockedByValidation(t *testing.T) {
	w := NewWizard(&stubRegisterer{})

	if w.Next() {
		t.Fatal("empty step 1 must not advance")
	}
	if w.Step() != 1 {
		t.Fatalf("expected step 1, got %d", w.Step())
	}
	if w.Errors()[FieldFullName] == "" {
		t.Fatal("expected full name error")
	}
}

func TestWizard_BackClearsErrors(t *testing.T) {
	w := NewWizard(&stubRegisterer{})
	fillValidDraft(w)

	if !w.Next() {
		t.Fatal("expected step 1 to pass")
	}
	w.SetField(FieldConfirmPassword, "different")
	if w.Next() {
		t.Fatal("expected step 2 to fail")
	}

	w.Back()
	if w.Step() != 1 {
		t.Fatalf("expected step 1, got %d", w.Step())
	}
	if len(w.Errors()) != 0 {
		t.Fatalf("expected cleared errors, got %+v", w.Errors())
	}
	// Field values survive the move back.
	if w.Form().Username != "aisha_bello" {
		t.Fatalf("draft lost its values: %+v", w.Form())
	}
}

func TestWizard_SubmitRejectsInvalidFinalStep(t *testing.T) {
	stub := &stubRegisterer{}
	w := NewWizard(stub)
	fillValidDraft(w)
	w.SetStationCodes(nil)

	err := w.Submit(context.Background())
	if !errors.Is(err, ErrInvalidDraft) {
		t.Fatalf("expected ErrInvalidDraft, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("register must not be called, got %d calls", stub.calls)
	}
	if w.Errors()[FieldStationCodes] == "" {
		t.Fatal("expected station error")
	}
}

func TestWizard_SubmitRegistersExactlyOnceAndResets(t *testing.T) {
	stub := &stubRegisterer{}
	w := NewWizard(stub, WithResetDelay(10*time.Millisecond))
	fillValidDraft(w)

	if !w.Next() || !w.Next() {
		t.Fatal("expected both steps to pass")
	}
	if w.Step() != 3 {
		t.Fatalf("expected step 3, got %d", w.Step())
	}

	if err := w.Submit(context.Background()); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("expected exactly one register call, got %d", stub.calls)
	}

	payload := stub.payloads[0]
	if payload.Username != "aisha_bello" || payload.Role != "accountant" || len(payload.StationCodes) != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if w.SuccessMessage() != "User aisha_bello registered successfully!" {
		t.Fatalf("unexpected success message: %q", w.SuccessMessage())
	}

	deadline := time.After(time.Second)
	for w.Step() != 1 || w.SuccessMessage() != "" {
		select {
		case <-deadline:
			t.Fatalf("wizard never reset: step=%d success=%q", w.Step(), w.SuccessMessage())
		case <-time.After(5 * time.Millisecond):
		}
	}
	form := w.Form()
	if form.Username != "" || form.Role != "viewer" || len(form.StationCodes) != 0 {
		t.Fatalf("draft not reset to defaults: %+v", form)
	}
}

func TestWizard_SubmitFailureKeepsDraft(t *testing.T) {
	stub := &stubRegisterer{err: errors.New("user already exists")}
	w := NewWizard(stub, WithResetDelay(10*time.Millisecond))
	fillValidDraft(w)

	if err := w.Submit(context.Background()); err == nil {
		t.Fatal("expected submit to fail")
	}
	time.Sleep(30 * time.Millisecond)

	if w.Form().Username != "aisha_bello" {
		t.Fatal("failed submit must keep the draft")
	}
	if w.SuccessMessage() != "" {
		t.Fatalf("unexpected success message: %q", w.SuccessMessage())
	}
}
