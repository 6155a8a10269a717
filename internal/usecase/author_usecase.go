package usecase

import (
	"context"
	"fmt"
	"time"

	"go-publishing-backend/internal/domain"

	"github.com/google/uuid"
)

type authorUsecase struct{}

// NewAuthorUsecase creates the author-information usecase
func NewAuthorUsecase() domain.AuthorUsecase {
	return &authorUsecase{}
}

func (uc *authorUsecase) GetAuthorInfo(ctx context.Context) (*domain.AuthorInfo, error) {
	return &domain.AuthorInfo{
		TotalAuthors:      1000,
		ActiveJournals:    8,
		AverageReviewTime: "4-6 weeks",
		AcceptanceRate:    "35%",
		Guidelines: domain.AuthorGuidelines{
			ManuscriptFormats: []string{"PDF", "DOC", "DOCX"},
			MaxFileSize:       "10MB",
			ReferenceStyle:    "APA, Chicago, MLA",
			WordLimit: map[string]string{
				"research": "8000-12000",
				"review":   "6000-10000",
				"brief":    "3000-5000",
			},
		},
		SupportServices: map[string]bool{
			"languageEditing": true,
			"copyEditing":     true,
			"proofreading":    true,
			"plagiarismCheck": true,
		},
		ContactInfo: domain.AuthorContactInfo{
			Email:         "authors@srpublishinghouse.com",
			Phone:         "+1-234-567-8900",
			BusinessHours: "9:00 AM - 6:00 PM (UTC)",
			ResponseTime:  "24-48 hours",
		},
	}, nil
}

func (uc *authorUsecase) SubmitInquiry(ctx context.Context, fields map[string]string) (*domain.AuthorInquiry, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("inquiry is empty")
	}
	return &domain.AuthorInquiry{
		ID:        fmt.Sprintf("inquiry_%s", uuid.NewString()),
		Fields:    fields,
		Status:    domain.SubmissionStatusReceived,
		CreatedAt: time.Now().UTC(),
	}, nil
}
