package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

const defaultResetDelay = 2 * time.Second

// ErrInvalidDraft is returned by Submit when the final step fails
// validation; the per-field messages are available through Errors.
var ErrInvalidDraft = errors.New("registration draft failed validation")

// registerer is the slice of Session the wizard needs.
type registerer interface {
	Register(ctx context.Context, payload RegisterPayload) error
}

// Wizard drives the three-step registration flow: basic information,
// account credentials, then role and permissions. Moving forward validates
// the current step's fields only; moving back clears the errors. After a
// successful submission the confirmation message stays up for the reset
// delay, then the draft returns to its defaults at step 1.
type Wizard struct {
	mu         sync.Mutex
	session    registerer
	step       int
	form       RegisterForm
	errors     map[Field]string
	success    string
	resetDelay time.Duration
	resetTimer *time.Timer
}

type WizardOption func(*Wizard)

// WithResetDelay overrides how long the success message stays visible
// before the draft resets.
func WithResetDelay(d time.Duration) WizardOption {
	return func(w *Wizard) {
		w.resetDelay = d
	}
}

func NewWizard(session registerer, opts ...WizardOption) *Wizard {
	w := &Wizard{
		session:    session,
		step:       1,
		form:       NewRegisterForm(),
		errors:     make(map[Field]string),
		resetDelay: defaultResetDelay,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Form() RegisterForm {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// Errors returns the validation messages from the last Next or Submit.
func (w *Wizard) Errors() map[Field]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[Field]string, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

func (w *Wizard) SuccessMessage() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.success
}

// SetField updates one text field of the draft.
func (w *Wizard) SetField(field Field, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch field {
	case FieldUsername:
		w.form.Username = value
	case FieldEmail:
		w.form.Email = value
	case FieldPassword:
		w.form.Password = value
	case FieldConfirmPassword:
		w.form.ConfirmPassword = value
	case FieldFullName:
		w.form.FullName = value
	case FieldPhone:
		w.form.Phone = value
	case FieldRole:
		w.form.Role = value
	}
}

func (w *Wizard) SetStationCodes(codes []string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.StationCodes = append([]string(nil), codes...)
}

func (w *Wizard) SetStatus(status string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form.Status = status
}

// Next validates the current step and advances when it passes. It reports
// whether the wizard moved forward; step 3 never advances, it submits.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.errors = ValidateStep(w.step, w.form)
	if len(w.errors) > 0 || w.step >= 3 {
		return false
	}
	w.step++
	return true
}

// Back moves to the previous step and clears the current errors. The field
// values themselves are kept.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > 1 {
		w.step--
	}
	w.errors = make(map[Field]string)
}

// Submit validates the final step and registers the drafted account.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	w.errors = ValidateStep(3, w.form)
	if len(w.errors) > 0 {
		w.mu.Unlock()
		return ErrInvalidDraft
	}
	form := w.form
	w.mu.Unlock()

	payload := RegisterPayload{
		Username:     form.Username,
		Email:        form.Email,
		Password:     form.Password,
		FullName:     form.FullName,
		Phone:        form.Phone,
		Role:         form.Role,
		StationCodes: form.StationCodes,
		Status:       form.Status,
	}
	if err := w.session.Register(ctx, payload); err != nil {
		return err
	}

	w.mu.Lock()
	w.success = fmt.Sprintf("User %s registered successfully!", form.Username)
	w.resetTimer = time.AfterFunc(w.resetDelay, w.reset)
	w.mu.Unlock()
	return nil
}

func (w *Wizard) reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.form = NewRegisterForm()
	w.step = 1
	w.errors = make(map[Field]string)
	w.success = ""
}
