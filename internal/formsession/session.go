// Package formsession consolidates the contact form's calendar, validation,
// and submission logic into one parameterized state machine. One Session is
// scoped to one rendering of the form; nothing is shared across sessions and
// nothing persists beyond the session besides the outbound intake request.
package formsession

import (
	"context"
	"sync"
	"time"
)

// Outcome classifies the state of the submission pipeline.
type Outcome string

const (
	OutcomeIdle    Outcome = "idle"
	OutcomePending Outcome = "pending"
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

// Submission is the payload shape required by the intake collaborator.
type Submission struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Message         string `json:"message"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime,omitempty"`
}

// Submitter performs the one outbound request of a submission attempt.
// Any returned error, transport or collaborator-reported, maps uniformly
// to the error outcome.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// Config carries the variant flags that replaced the original's
// copy-pasted form components.
type Config struct {
	// RequireTime adds the appointmentTime field and its validation rule.
	RequireTime bool
	// Business window for time slots, e.g. "09:00".."17:00".
	SlotStart string
	SlotEnd   string
	// Granularity between slots. Zero means half-hour.
	SlotInterval time.Duration
}

// DefaultConfig is the date-only variant used by the home page form.
func DefaultConfig() Config {
	return Config{
		SlotStart:    "09:00",
		SlotEnd:      "17:00",
		SlotInterval: 30 * time.Minute,
	}
}

// Session owns one form lifetime: FormState, ErrorMap, calendar state, and
// the submission outcome. The mutex backs the pending guard; all other
// access is expected from a single UI event loop.
type Session struct {
	cfg       Config
	submitter Submitter
	now       func() time.Time

	mu        sync.Mutex
	form      FormState
	errors    ErrorMap
	outcome   Outcome
	selected  *time.Time
	viewYear  int
	viewMonth time.Month
}

// Option configures a Session at construction.
type Option func(*Session)

// WithClock injects the time source. Replaces the original's ambient
// "new Date()" so tests control what "today" means.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates a form session viewing the current month with empty state.
func New(cfg Config, submitter Submitter, opts ...Option) *Session {
	s := &Session{
		cfg:       cfg,
		submitter: submitter,
		now:       time.Now,
		outcome:   OutcomeIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	now := s.now()
	s.viewYear, s.viewMonth = now.Year(), now.Month()
	return s
}

// reset restores FormState, ErrorMap and the selection to initial values.
func (s *Session) reset() {
	s.form = FormState{
		FieldName:            "",
		FieldEmail:           "",
		FieldMessage:         "",
		FieldAppointmentDate: "",
	}
	if s.cfg.RequireTime {
		s.form[FieldAppointmentTime] = ""
	}
	s.errors = ErrorMap{}
	s.selected = nil
}

// Outcome returns the current pipeline outcome.
func (s *Session) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Config returns the session's variant configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Submit runs the pipeline: validate, serialize, send, interpret.
//
// A validation failure populates the error map and performs no I/O. While a
// request is in flight the session is pending and further Submit calls are
// no-ops, never queued duplicates. On success the form and selection are
// cleared for a new entry; on failure they are retained exactly so the user
// can retry without re-entering data. Either terminal releases the guard.
func (s *Session) Submit(ctx context.Context) Outcome {
	s.mu.Lock()
	if s.outcome == OutcomePending {
		s.mu.Unlock()
		return OutcomePending
	}

	errs := Validate(s.form, s.cfg.RequireTime)
	if !IsFormValid(errs) {
		s.errors = ErrorMap{}
		for f, msg := range errs {
			if msg != "" {
				s.errors[f] = msg
			}
		}
		s.outcome = OutcomeIdle
		s.mu.Unlock()
		return OutcomeIdle
	}

	if s.submitter == nil {
		// Contract violation; degrade rather than crash the session.
		s.outcome = OutcomeError
		s.mu.Unlock()
		return OutcomeError
	}

	s.outcome = OutcomePending
	sub := Submission{
		Name:            s.form[FieldName],
		Email:           s.form[FieldEmail],
		Message:         s.form[FieldMessage],
		AppointmentDate: s.form[FieldAppointmentDate],
		AppointmentTime: s.form[FieldAppointmentTime],
	}
	s.mu.Unlock()

	err := s.submitter.Submit(ctx, sub)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.outcome = OutcomeError
		return OutcomeError
	}
	s.reset()
	s.outcome = OutcomeSuccess
	return OutcomeSuccess
}
