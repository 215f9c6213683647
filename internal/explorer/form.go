package explorer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"cosmosexplorer/internal/chainapi"

	"github.com/jellydator/validation"
	"go.uber.org/zap"
)

var (
	ErrSubmitting   = errors.New("submission already in progress")
	ErrInvalidInput = errors.New("invalid input")
)

// FormConfig wires one mutation. Guard checks the input against the loaded
// views before any request is sent; Refresh lists the views re-fetched after
// a successful submit.
type FormConfig[In validation.Validatable] struct {
	Name    string
	Submit  func(ctx context.Context, in In) (string, error)
	Guard   func(in In) error
	Refresh []func(ctx context.Context) error
}

type FormState[In validation.Validatable] struct {
	Input      In     `json:"input"`
	Open       bool   `json:"open"`
	Submitting bool   `json:"submitting"`
	CanSubmit  bool   `json:"canSubmit"`
	Problem    string `json:"problem,omitempty"`
}

// Form holds the raw input of one mutation. The input survives a failed
// submit and is reset after a successful one.
type Form[In validation.Validatable] struct {
	logs     *zap.SugaredLogger
	notifier Notifier
	cfg      FormConfig[In]

	mu         sync.Mutex
	input      In
	open       bool
	submitting bool
}

// NewForm is a constructor function for the Form type.
func NewForm[In validation.Validatable](logger *zap.SugaredLogger, notifier Notifier, cfg FormConfig[In]) *Form[In] {
	return &Form[In]{
		logs:     logger.Named(cfg.Name),
		notifier: notifier,
		cfg:      cfg,
	}
}

func (f *Form[In]) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
}

// Close hides the form and keeps what was typed.
func (f *Form[In]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
}

// Set replaces the input and opens the form. The input of a pending submit
// cannot be replaced.
func (f *Form[In]) Set(in In) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitting {
		return ErrSubmitting
	}
	f.input = in
	f.open = true
	return nil
}

func (f *Form[In]) Input() In {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

func (f *Form[In]) CanSubmit() bool {
	return f.State().CanSubmit
}

func (f *Form[In]) State() FormState[In] {
	f.mu.Lock()
	defer f.mu.Unlock()
	problem := f.check(f.input)
	s := FormState[In]{
		Input:      f.input,
		Open:       f.open,
		Submitting: f.submitting,
		CanSubmit:  !f.submitting && problem == nil,
	}
	if problem != nil {
		s.Problem = problem.Error()
	}
	return s
}

func (f *Form[In]) check(in In) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if f.cfg.Guard != nil {
		return f.cfg.Guard(in)
	}
	return nil
}

// Submit sends the current input. Nothing is sent while another submit is
// pending or while the input is invalid.
func (f *Form[In]) Submit(ctx context.Context) error {
	f.mu.Lock()
	return f.send(ctx, f.input)
}

// SubmitInput replaces the input and sends it in one step, so concurrent
// callers never send each other's input.
func (f *Form[In]) SubmitInput(ctx context.Context, in In) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	f.input = in
	f.open = true
	return f.send(ctx, in)
}

// send runs the submit for in. Callers hold mu; send releases it.
func (f *Form[In]) send(ctx context.Context, in In) error {
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	if err := f.check(in); err != nil {
		f.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	f.submitting = true
	f.mu.Unlock()

	msg, err := f.cfg.Submit(ctx, in)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.mu.Unlock()
		f.logs.Warnw("submit failed", "error", err)
		f.notifier.Error(f.failure(err))
		return err
	}
	var zero In
	f.input = zero
	f.open = false
	f.mu.Unlock()

	f.logs.Infow("submit succeeded", "message", msg)
	f.notifier.Success(msg)

	for _, refresh := range f.cfg.Refresh {
		// Views report their own fetch failures.
		_ = refresh(ctx)
	}
	return nil
}

// failure prefers the explanation the server gave.
func (f *Form[In]) failure(err error) string {
	if msg, ok := chainapi.ServerMessage(err); ok {
		return msg
	}
	return fmt.Sprintf("%s failed: %s", f.cfg.Name, chainapi.Message(err))
}
