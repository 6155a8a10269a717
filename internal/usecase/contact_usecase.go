package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-publishing-backend/internal/domain"
	"go-publishing-backend/internal/formsession"
	"go-publishing-backend/pkg/email"
	"go-publishing-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const appointmentDateLayout = "2006-01-02"

// urgency keywords in the subject line escalate priority
var urgentKeywords = []string{"urgent", "emergency", "deadline", "asap", "immediate"}

var autoResponses = map[string]string{
	domain.ContactTypeAuthorInquiry:     "Thank you for your author inquiry. Our editorial team will review your message and respond with guidance on submission requirements and processes.",
	domain.ContactTypeSubmissionSupport: "We have received your submission support request. Our technical team will assist you with any submission platform issues or questions.",
	domain.ContactTypeEditorial:         "Your message has been forwarded to our editorial team. We will provide feedback or clarification on editorial matters promptly.",
	domain.ContactTypeTechnical:         "Our technical support team has been notified of your issue. We will work to resolve any platform or technical difficulties quickly.",
	domain.ContactTypePartnership:       "Thank you for your partnership inquiry. Our business development team will review your proposal and get back to you soon.",
	domain.ContactTypeGeneral:           "Thank you for contacting SR Publishing House. We have received your message and will respond as soon as possible.",
}

type contactUsecase struct {
	repo         domain.ContactRepository
	emailService *email.EmailService
	validate     *validator.Validate
	slotCfg      formsession.Config
	now          func() time.Time
}

// NewContactUsecase creates a new contact usecase. slotCfg carries the
// appointment business window used to check time slots at the boundary.
func NewContactUsecase(repo domain.ContactRepository, emailService *email.EmailService, validate *validator.Validate, slotCfg formsession.Config) domain.ContactUsecase {
	return &contactUsecase{
		repo:         repo,
		emailService: emailService,
		validate:     validate,
		slotCfg:      slotCfg,
		now:          time.Now,
	}
}

// SubmitContact validates the request, derives priority and auto response,
// stores the submission and, when SMTP is configured, notifies the
// editorial inbox.
func (uc *contactUsecase) SubmitContact(ctx context.Context, req *domain.ContactRequest) (*domain.ContactSubmission, error) {
	// Additional validation beyond binding
	if err := uc.validate.Struct(req); err != nil {
		return nil, err
	}

	apptDate, err := time.Parse(appointmentDateLayout, req.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("appointment date must be YYYY-MM-DD")
	}
	today := uc.now()
	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if apptDate.Before(todayMidnight) {
		return nil, fmt.Errorf("appointment date cannot be in the past")
	}

	if req.AppointmentTime != "" && !uc.slotCfg.IsLegalSlot(req.AppointmentTime) {
		return nil, fmt.Errorf("appointment time is not an available slot")
	}

	contactType := req.ContactType
	if contactType == "" {
		contactType = domain.ContactTypeGeneral
	}

	sub := &domain.ContactSubmission{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:         strings.TrimSpace(req.Subject),
		Message:         strings.TrimSpace(req.Message),
		AppointmentDate: apptDate,
		ContactType:     contactType,
		Status:          domain.SubmissionStatusReceived,
		Priority:        determinePriority(contactType, req.Subject),
		AutoResponse:    autoResponse(contactType),
		CreatedAt:       uc.now(),
	}
	if req.AppointmentTime != "" {
		t := req.AppointmentTime
		sub.AppointmentTime = &t
	}
	if v := strings.TrimSpace(req.Affiliation); v != "" {
		sub.Affiliation = &v
	}
	if v := strings.TrimSpace(req.Phone); v != "" {
		sub.Phone = &v
	}

	if err := uc.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to store contact submission: %w", err)
	}

	// Notification is best effort: a stored submission is not lost because
	// the mail relay hiccuped.
	if uc.emailService != nil && uc.emailService.IsConfigured() {
		data := email.IntakeEmailData{
			SenderName:      sub.Name,
			SenderEmail:     sub.Email,
			Subject:         sub.Subject,
			Message:         sub.Message,
			AppointmentDate: sub.AppointmentDate.Format(appointmentDateLayout),
			ContactType:     sub.ContactType,
			Priority:        sub.Priority,
		}
		if sub.AppointmentTime != nil {
			data.AppointmentTime = *sub.AppointmentTime
		}
		if err := uc.emailService.SendIntakeEmail(data); err != nil {
			logger.Log.Warn("Failed to send intake notification", "submission_id", sub.ID, "error", err)
		}
	}

	return sub, nil
}

func (uc *contactUsecase) GetSubmission(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	return uc.repo.GetByID(ctx, id)
}

func (uc *contactUsecase) ListSubmissions(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.Fetch(ctx, limit, offset)
}

func determinePriority(contactType, subject string) string {
	subjectLower := strings.ToLower(subject)
	for _, kw := range urgentKeywords {
		if strings.Contains(subjectLower, kw) {
			return domain.PriorityHigh
		}
	}
	switch contactType {
	case domain.ContactTypeEditorial, domain.ContactTypeTechnical, domain.ContactTypeSubmissionSupport:
		return domain.PriorityHigh
	case domain.ContactTypeAuthorInquiry:
		return domain.PriorityMedium
	}
	return domain.PriorityLow
}

func autoResponse(contactType string) string {
	if resp, ok := autoResponses[contactType]; ok {
		return resp
	}
	return autoResponses[domain.ContactTypeGeneral]
}
