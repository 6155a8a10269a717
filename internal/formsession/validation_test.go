package formsession_test

import (
	"context"
	"testing"

	"go-publishing-backend/internal/formsession"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("Should report every rule for an empty form", func(t *testing.T) {
		errs := formsession.Validate(formsession.FormState{}, false)

		assert.Equal(t, formsession.MsgNameRequired, errs[formsession.FieldName])
		assert.Equal(t, formsession.MsgEmailRequired, errs[formsession.FieldEmail])
		assert.Equal(t, formsession.MsgMessageRequired, errs[formsession.FieldMessage])
		assert.Equal(t, formsession.MsgDateRequired, errs[formsession.FieldAppointmentDate])
		assert.False(t, formsession.IsFormValid(errs))
	})

	t.Run("Should pass a fully valid form", func(t *testing.T) {
		errs := formsession.Validate(formsession.FormState{
			formsession.FieldName:            "Jane Reviewer",
			formsession.FieldEmail:           "jane@example.com",
			formsession.FieldMessage:         "I would like to discuss my manuscript.",
			formsession.FieldAppointmentDate: "2026-09-01",
		}, false)

		for field, msg := range errs {
			assert.Empty(t, msg, "unexpected error for %s", field)
		}
		assert.True(t, formsession.IsFormValid(errs))
	})

	t.Run("Should distinguish missing from malformed email", func(t *testing.T) {
		errs := formsession.Validate(formsession.FormState{formsession.FieldEmail: ""}, false)
		assert.Equal(t, formsession.MsgEmailRequired, errs[formsession.FieldEmail])

		errs = formsession.Validate(formsession.FormState{formsession.FieldEmail: "not-an-email"}, false)
		assert.Equal(t, formsession.MsgEmailInvalid, errs[formsession.FieldEmail])

		errs = formsession.Validate(formsession.FormState{formsession.FieldEmail: "user@host"}, false)
		assert.Equal(t, formsession.MsgEmailInvalid, errs[formsession.FieldEmail])

		errs = formsession.Validate(formsession.FormState{formsession.FieldEmail: "user@host.co"}, false)
		assert.Empty(t, errs[formsession.FieldEmail])
	})

	t.Run("Should treat whitespace-only name and message as empty", func(t *testing.T) {
		errs := formsession.Validate(formsession.FormState{
			formsession.FieldName:    "   ",
			formsession.FieldMessage: "\t\n",
		}, false)
		assert.Equal(t, formsession.MsgNameRequired, errs[formsession.FieldName])
		assert.Equal(t, formsession.MsgMessageRequired, errs[formsession.FieldMessage])
	})

	t.Run("Should require a time only when the variant asks for one", func(t *testing.T) {
		form := formsession.FormState{
			formsession.FieldName:            "Jane",
			formsession.FieldEmail:           "jane@example.com",
			formsession.FieldMessage:         "Hello there, publishing team.",
			formsession.FieldAppointmentDate: "2026-09-01",
		}

		errs := formsession.Validate(form, false)
		_, present := errs[formsession.FieldAppointmentTime]
		assert.False(t, present, "date-only variant must not evaluate the time field")

		errs = formsession.Validate(form, true)
		assert.Equal(t, formsession.MsgTimeRequired, errs[formsession.FieldAppointmentTime])

		form[formsession.FieldAppointmentTime] = "10:00"
		errs = formsession.Validate(form, true)
		assert.True(t, formsession.IsFormValid(errs))
	})
}

func TestSetField(t *testing.T) {
	t.Run("Should clear only the corrected field's error", func(t *testing.T) {
		s := newSession(t)
		s.Submit(context.Background())

		errs := s.Errors()
		assert.Equal(t, formsession.MsgNameRequired, errs[formsession.FieldName])
		assert.Equal(t, formsession.MsgEmailRequired, errs[formsession.FieldEmail])

		s.SetField(formsession.FieldName, "Jane")

		errs = s.Errors()
		_, present := errs[formsession.FieldName]
		assert.False(t, present)
		assert.Equal(t, formsession.MsgEmailRequired, errs[formsession.FieldEmail])
		assert.Equal(t, formsession.MsgMessageRequired, errs[formsession.FieldMessage])
	})

	t.Run("Should replace the error when the new value is still invalid", func(t *testing.T) {
		s := newSession(t)
		s.Submit(context.Background())

		s.SetField(formsession.FieldEmail, "still-wrong")
		assert.Equal(t, formsession.MsgEmailInvalid, s.Errors()[formsession.FieldEmail])
	})

	t.Run("Should not surface new errors while merely typing", func(t *testing.T) {
		s := newSession(t)
		s.SetField(formsession.FieldEmail, "partial@")
		assert.Empty(t, s.Errors(), "errors appear on submit, not on keystrokes")
		assert.Equal(t, "partial@", s.Field(formsession.FieldEmail))
	})
}

func TestSubmitValidationFailure(t *testing.T) {
	s := newSession(t)
	s.SetField(formsession.FieldName, "Jane")

	out := s.Submit(context.Background())

	assert.Equal(t, formsession.OutcomeIdle, out, "validation failure is not a pipeline error")
	errs := s.Errors()
	_, present := errs[formsession.FieldName]
	assert.False(t, present)
	assert.Equal(t, formsession.MsgEmailRequired, errs[formsession.FieldEmail])
	assert.Equal(t, "Jane", s.Field(formsession.FieldName), "input is kept on validation failure")
}
