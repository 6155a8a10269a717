package formsession

import (
	"regexp"
	"strings"
)

// Form field names, matching the JSON keys of the intake payload.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldMessage         = "message"
	FieldAppointmentDate = "appointmentDate"
	FieldAppointmentTime = "appointmentTime"
)

const dateLayout = "2006-01-02"

// Validation messages surfaced inline next to each field.
const (
	MsgNameRequired    = "Name is required"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Invalid email address"
	MsgMessageRequired = "Message is required"
	MsgDateRequired    = "Please select a date from the calendar"
	MsgTimeRequired    = "Please select an appointment time"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// FormState maps field name to current value. All fields default to the
// empty string; appointmentDate is only non-empty after a calendar selection.
type FormState map[string]string

// ErrorMap maps field name to a human-readable error, or "" for no error.
type ErrorMap map[string]string

// validateField evaluates the rule for one field. It never panics and
// always returns a string, possibly empty.
func validateField(field, value string, requireTime bool) string {
	switch field {
	case FieldName:
		if strings.TrimSpace(value) == "" {
			return MsgNameRequired
		}
	case FieldEmail:
		if value == "" {
			return MsgEmailRequired
		}
		if !emailRegex.MatchString(value) {
			return MsgEmailInvalid
		}
	case FieldMessage:
		if strings.TrimSpace(value) == "" {
			return MsgMessageRequired
		}
	case FieldAppointmentDate:
		if value == "" {
			return MsgDateRequired
		}
	case FieldAppointmentTime:
		if requireTime && value == "" {
			return MsgTimeRequired
		}
	}
	return ""
}

// Validate maps a FormState to a fresh ErrorMap. Pure: no side effects on
// the session, no I/O.
func Validate(form FormState, requireTime bool) ErrorMap {
	fields := []string{FieldName, FieldEmail, FieldMessage, FieldAppointmentDate}
	if requireTime {
		fields = append(fields, FieldAppointmentTime)
	}
	errs := make(ErrorMap, len(fields))
	for _, f := range fields {
		errs[f] = validateField(f, form[f], requireTime)
	}
	return errs
}

// IsFormValid reports whether every entry in the map is the empty string.
func IsFormValid(errs ErrorMap) bool {
	for _, msg := range errs {
		if msg != "" {
			return false
		}
	}
	return true
}

// SetField updates one field's value and re-validates only that field,
// so fixing one input clears exactly its own error and never flashes
// unrelated errors away.
func (s *Session) SetField(field, value string) {
	s.form[field] = value
	if _, present := s.errors[field]; !present {
		return
	}
	if msg := validateField(field, value, s.cfg.RequireTime); msg == "" {
		delete(s.errors, field)
	} else {
		s.errors[field] = msg
	}
}

// Field returns the current value of one form field.
func (s *Session) Field(field string) string {
	return s.form[field]
}

// Errors returns a copy of the current error map.
func (s *Session) Errors() ErrorMap {
	out := make(ErrorMap, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}
