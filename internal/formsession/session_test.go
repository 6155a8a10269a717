package formsession_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go-publishing-backend/internal/formsession"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, sub formsession.Submission) error {
	return m.Called(ctx, sub).Error(0)
}

// blockingSubmitter parks inside Submit until released, so tests can observe
// the session while a request is in flight.
type blockingSubmitter struct {
	entered chan struct{}
	release chan struct{}
	calls   int32
}

func (b *blockingSubmitter) Submit(ctx context.Context, sub formsession.Submission) error {
	atomic.AddInt32(&b.calls, 1)
	close(b.entered)
	<-b.release
	return nil
}

func fillValidForm(s *formsession.Session) {
	s.SetField(formsession.FieldName, "Jane Author")
	s.SetField(formsession.FieldEmail, "jane@example.com")
	s.SetField(formsession.FieldMessage, "I would like to schedule a manuscript consultation.")
	_ = s.Select(time.Date(2026, time.March, 20, 0, 0, 0, 0, time.Local))
}

func TestSubmitSuccess(t *testing.T) {
	sub := new(MockSubmitter)
	s := formsession.New(formsession.DefaultConfig(), sub, formsession.WithClock(fixedClock()))
	fillValidForm(s)

	expected := formsession.Submission{
		Name:            "Jane Author",
		Email:           "jane@example.com",
		Message:         "I would like to schedule a manuscript consultation.",
		AppointmentDate: "2026-03-20",
	}
	sub.On("Submit", mock.Anything, expected).Return(nil).Once()

	out := s.Submit(context.Background())

	assert.Equal(t, formsession.OutcomeSuccess, out)
	sub.AssertExpectations(t)

	t.Run("Should clear the form and selection for a new entry", func(t *testing.T) {
		assert.Empty(t, s.Field(formsession.FieldName))
		assert.Empty(t, s.Field(formsession.FieldEmail))
		assert.Empty(t, s.Field(formsession.FieldMessage))
		assert.Empty(t, s.Field(formsession.FieldAppointmentDate))
		_, ok := s.SelectedDate()
		assert.False(t, ok)
		assert.Empty(t, s.Errors())
	})

	t.Run("Should accept another submission after success", func(t *testing.T) {
		fillValidForm(s)
		sub.On("Submit", mock.Anything, expected).Return(nil).Once()
		assert.Equal(t, formsession.OutcomeSuccess, s.Submit(context.Background()))
		sub.AssertExpectations(t)
	})
}

func TestSubmitFailure(t *testing.T) {
	sub := new(MockSubmitter)
	s := formsession.New(formsession.DefaultConfig(), sub, formsession.WithClock(fixedClock()))
	fillValidForm(s)

	sub.On("Submit", mock.Anything, mock.Anything).Return(errors.New("intake unavailable")).Once()

	out := s.Submit(context.Background())

	assert.Equal(t, formsession.OutcomeError, out)
	assert.Equal(t, formsession.OutcomeError, s.Outcome())

	t.Run("Should retain every field and the selection exactly", func(t *testing.T) {
		assert.Equal(t, "Jane Author", s.Field(formsession.FieldName))
		assert.Equal(t, "jane@example.com", s.Field(formsession.FieldEmail))
		assert.Equal(t, "2026-03-20", s.Field(formsession.FieldAppointmentDate))
		sel, ok := s.SelectedDate()
		assert.True(t, ok)
		assert.Equal(t, 20, sel.Day())
	})

	t.Run("Should allow a retry without re-entering data", func(t *testing.T) {
		sub.On("Submit", mock.Anything, mock.Anything).Return(nil).Once()
		assert.Equal(t, formsession.OutcomeSuccess, s.Submit(context.Background()))
		sub.AssertExpectations(t)
	})
}

func TestSubmitPendingGuard(t *testing.T) {
	blocker := &blockingSubmitter{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := formsession.New(formsession.DefaultConfig(), blocker, formsession.WithClock(fixedClock()))
	fillValidForm(s)

	done := make(chan formsession.Outcome, 1)
	go func() { done <- s.Submit(context.Background()) }()

	select {
	case <-blocker.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("submitter was never invoked")
	}

	assert.Equal(t, formsession.OutcomePending, s.Outcome())
	assert.Equal(t, formsession.OutcomePending, s.Submit(context.Background()),
		"a second submit while pending is a no-op")

	close(blocker.release)
	assert.Equal(t, formsession.OutcomeSuccess, <-done)
	assert.Equal(t, int32(1), atomic.LoadInt32(&blocker.calls),
		"the duplicate submit must not reach the submitter")
}

func TestSubmitWithoutSubmitter(t *testing.T) {
	s := formsession.New(formsession.DefaultConfig(), nil, formsession.WithClock(fixedClock()))
	fillValidForm(s)

	assert.Equal(t, formsession.OutcomeError, s.Submit(context.Background()))
	assert.Equal(t, "Jane Author", s.Field(formsession.FieldName))
}

func TestSubmissionPayloadShape(t *testing.T) {
	t.Run("Should omit the time field in the date-only variant", func(t *testing.T) {
		sub := new(MockSubmitter)
		s := formsession.New(formsession.DefaultConfig(), sub, formsession.WithClock(fixedClock()))
		fillValidForm(s)

		sub.On("Submit", mock.Anything, mock.MatchedBy(func(p formsession.Submission) bool {
			return p.AppointmentTime == ""
		})).Return(nil).Once()

		assert.Equal(t, formsession.OutcomeSuccess, s.Submit(context.Background()))
		sub.AssertExpectations(t)
	})

	t.Run("Should carry the chosen slot in the timed variant", func(t *testing.T) {
		cfg := formsession.DefaultConfig()
		cfg.RequireTime = true
		sub := new(MockSubmitter)
		s := formsession.New(cfg, sub, formsession.WithClock(fixedClock()))
		fillValidForm(s)
		s.SetField(formsession.FieldAppointmentTime, "14:30")

		sub.On("Submit", mock.Anything, mock.MatchedBy(func(p formsession.Submission) bool {
			return p.AppointmentTime == "14:30"
		})).Return(nil).Once()

		assert.Equal(t, formsession.OutcomeSuccess, s.Submit(context.Background()))
		sub.AssertExpectations(t)
	})
}
