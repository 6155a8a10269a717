package domain

import (
	"context"
	"time"
)

// Contact type categories accepted by the intake endpoint.
const (
	ContactTypeGeneral           = "general"
	ContactTypeAuthorInquiry     = "author-inquiry"
	ContactTypeSubmissionSupport = "submission-support"
	ContactTypeEditorial         = "editorial"
	ContactTypeTechnical         = "technical"
	ContactTypePartnership       = "partnership"
)

// Submission lifecycle statuses.
const (
	SubmissionStatusReceived   = "received"
	SubmissionStatusProcessing = "processing"
	SubmissionStatusCompleted  = "completed"
)

// Submission priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ContactRequest represents a contact form submission with an appointment
// request attached. AppointmentDate arrives as the calendar's canonical
// YYYY-MM-DD string; AppointmentTime, when present, must be one of the
// enumerable business-window slots.
type ContactRequest struct {
	Name            string `json:"name" binding:"required,min=2" validate:"required,min=2,valid_name,no_emoji"`
	Email           string `json:"email" binding:"required,email" validate:"required,email"`
	Subject         string `json:"subject" validate:"omitempty,max=300"`
	Message         string `json:"message" binding:"required,min=10" validate:"required,min=10"`
	AppointmentDate string `json:"appointmentDate" binding:"required" validate:"required"`
	AppointmentTime string `json:"appointmentTime"`
	ContactType     string `json:"contactType" binding:"omitempty,oneof=general author-inquiry submission-support editorial technical partnership" validate:"omitempty,oneof=general author-inquiry submission-support editorial technical partnership"`
	Affiliation     string `json:"affiliation" validate:"omitempty,max=200"`
	Phone           string `json:"phone" validate:"omitempty,valid_phone"`
}

// ContactSubmission is a stored intake record.
type ContactSubmission struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Subject         string    `json:"subject"`
	Message         string    `json:"message"`
	AppointmentDate time.Time `json:"appointment_date"`
	AppointmentTime *string   `json:"appointment_time,omitempty"`
	ContactType     string    `json:"contact_type"`
	Affiliation     *string   `json:"affiliation,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	AutoResponse    string    `json:"auto_response"`
	CreatedAt       time.Time `json:"created_at"`
}

type ContactRepository interface {
	Create(ctx context.Context, sub *ContactSubmission) error
	GetByID(ctx context.Context, id string) (*ContactSubmission, error)
	Fetch(ctx context.Context, limit, offset int) ([]ContactSubmission, int64, error)
}

type ContactUsecase interface {
	// SubmitContact validates the request and stores the submission.
	SubmitContact(ctx context.Context, req *ContactRequest) (*ContactSubmission, error)
	// ListSubmissions returns stored submissions for the admin console.
	ListSubmissions(ctx context.Context, limit, offset int) ([]ContactSubmission, int64, error)
	// GetSubmission returns one stored submission by id.
	GetSubmission(ctx context.Context, id string) (*ContactSubmission, error)
}
