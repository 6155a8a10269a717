package domain

import (
	"context"
	"time"
)

// AuthorInfo is the author-facing statistics payload served to the
// "For Authors" page.
type AuthorInfo struct {
	TotalAuthors      int               `json:"totalAuthors"`
	ActiveJournals    int               `json:"activeJournals"`
	AverageReviewTime string            `json:"averageReviewTime"`
	AcceptanceRate    string            `json:"acceptanceRate"`
	Guidelines        AuthorGuidelines  `json:"guidelines"`
	SupportServices   map[string]bool   `json:"supportServices"`
	ContactInfo       AuthorContactInfo `json:"contactInfo"`
}

type AuthorGuidelines struct {
	ManuscriptFormats []string          `json:"manuscriptFormats"`
	MaxFileSize       string            `json:"maxFileSize"`
	ReferenceStyle    string            `json:"referenceStyle"`
	WordLimit         map[string]string `json:"wordLimit"`
}

type AuthorContactInfo struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	BusinessHours string `json:"businessHours"`
	ResponseTime  string `json:"responseTime"`
}

// AuthorInquiry is a free-form question submitted from the authors page.
type AuthorInquiry struct {
	ID        string            `json:"id"`
	Fields    map[string]string `json:"fields"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

type AuthorUsecase interface {
	GetAuthorInfo(ctx context.Context) (*AuthorInfo, error)
	SubmitInquiry(ctx context.Context, fields map[string]string) (*AuthorInquiry, error)
}
