package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

type NewsItem struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	CategoryName string    `json:"category_name"`
	PubDate      time.Time `json:"pub_date"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type NewsRequest struct {
	Title        string `json:"title" binding:"required,min=3,max=200" validate:"required,min=3,max=200"`
	Description  string `json:"description" binding:"required" validate:"required"`
	Image        string `json:"image"`
	CategoryName string `json:"category_name" binding:"required" validate:"required"`
	PubDate      string `json:"pub_date" binding:"required" validate:"required"`
	IsActive     *bool  `json:"is_active"`
}

type NewsRepository interface {
	Create(ctx context.Context, item *NewsItem) error
	GetByID(ctx context.Context, id int64) (*NewsItem, error)
	Fetch(ctx context.Context, limit, offset int) ([]NewsItem, int64, error)
	FetchActive(ctx context.Context, limit, offset int) ([]NewsItem, int64, error)
	Update(ctx context.Context, item *NewsItem) error
	Delete(ctx context.Context, id int64) error
}

type NewsUsecase interface {
	CreateNews(ctx context.Context, req *NewsRequest) (*NewsItem, error)
	GetNews(ctx context.Context, id int64) (*NewsItem, error)
	// ListNews returns active items for the public site.
	ListNews(ctx context.Context, limit, offset int) ([]NewsItem, int64, error)
	// ListAllNews returns every item, including inactive, for the admin console.
	ListAllNews(ctx context.Context, limit, offset int) ([]NewsItem, int64, error)
	UpdateNews(ctx context.Context, id int64, req *NewsRequest) (*NewsItem, error)
	// SetNewsImage replaces the stored card image for one item.
	SetNewsImage(ctx context.Context, id int64, image string) (*NewsItem, error)
	DeleteNews(ctx context.Context, id int64) error
}
