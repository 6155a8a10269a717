package usecase

import (
	"context"
	"fmt"
	"time"

	"go-publishing-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type newsUsecase struct {
	repo     domain.NewsRepository
	validate *validator.Validate
}

// NewNewsUsecase creates a new news usecase
func NewNewsUsecase(repo domain.NewsRepository, validate *validator.Validate) domain.NewsUsecase {
	return &newsUsecase{repo: repo, validate: validate}
}

func (uc *newsUsecase) CreateNews(ctx context.Context, req *domain.NewsRequest) (*domain.NewsItem, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, err
	}

	pubDate, err := time.Parse("2006-01-02", req.PubDate)
	if err != nil {
		return nil, fmt.Errorf("pub_date must be YYYY-MM-DD")
	}

	now := time.Now()
	item := &domain.NewsItem{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		CategoryName: req.CategoryName,
		PubDate:      pubDate,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *newsUsecase) GetNews(ctx context.Context, id int64) (*domain.NewsItem, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *newsUsecase) ListNews(ctx context.Context, limit, offset int) ([]domain.NewsItem, int64, error) {
	limit, offset = clampPage(limit, offset)
	return uc.repo.FetchActive(ctx, limit, offset)
}

func (uc *newsUsecase) ListAllNews(ctx context.Context, limit, offset int) ([]domain.NewsItem, int64, error) {
	limit, offset = clampPage(limit, offset)
	return uc.repo.Fetch(ctx, limit, offset)
}

func (uc *newsUsecase) UpdateNews(ctx context.Context, id int64, req *domain.NewsRequest) (*domain.NewsItem, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, err
	}

	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pubDate, err := time.Parse("2006-01-02", req.PubDate)
	if err != nil {
		return nil, fmt.Errorf("pub_date must be YYYY-MM-DD")
	}

	item.Title = req.Title
	item.Description = req.Description
	if req.Image != "" {
		item.Image = req.Image
	}
	item.CategoryName = req.CategoryName
	item.PubDate = pubDate
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *newsUsecase) SetNewsImage(ctx context.Context, id int64, image string) (*domain.NewsItem, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Image = image
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *newsUsecase) DeleteNews(ctx context.Context, id int64) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
