package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-publishing-backend/internal/domain"
	"go-publishing-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNewsRepo struct {
	mock.Mock
}

func (m *MockNewsRepo) Create(ctx context.Context, item *domain.NewsItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockNewsRepo) GetByID(ctx context.Context, id int64) (*domain.NewsItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsItem), args.Error(1)
}

func (m *MockNewsRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.NewsItem, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.NewsItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockNewsRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.NewsItem, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.NewsItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockNewsRepo) Update(ctx context.Context, item *domain.NewsItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockNewsRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func validNewsRequest() *domain.NewsRequest {
	return &domain.NewsRequest{
		Title:        "New Journal Issue Released",
		Description:  "The spring issue is now available.",
		CategoryName: "Announcements",
		PubDate:      "2026-04-01",
	}
}

func TestCreateNews(t *testing.T) {
	t.Run("Should create an active item by default", func(t *testing.T) {
		mockRepo := new(MockNewsRepo)
		uc := usecase.NewNewsUsecase(mockRepo, newValidator())
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		item, err := uc.CreateNews(context.Background(), validNewsRequest())

		assert.NoError(t, err)
		assert.True(t, item.IsActive)
		assert.Equal(t, time.April, item.PubDate.Month())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should honor an explicit inactive flag", func(t *testing.T) {
		mockRepo := new(MockNewsRepo)
		uc := usecase.NewNewsUsecase(mockRepo, newValidator())
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		inactive := false
		req := validNewsRequest()
		req.IsActive = &inactive
		item, err := uc.CreateNews(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, item.IsActive)
	})

	t.Run("Should reject a malformed publication date", func(t *testing.T) {
		mockRepo := new(MockNewsRepo)
		uc := usecase.NewNewsUsecase(mockRepo, newValidator())

		req := validNewsRequest()
		req.PubDate = "April 1st"
		_, err := uc.CreateNews(context.Background(), req)

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject a too-short title", func(t *testing.T) {
		mockRepo := new(MockNewsRepo)
		uc := usecase.NewNewsUsecase(mockRepo, newValidator())

		req := validNewsRequest()
		req.Title = "Hi"
		_, err := uc.CreateNews(context.Background(), req)

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestUpdateNews(t *testing.T) {
	stored := &domain.NewsItem{
		ID:           4,
		Title:        "Old Title For This Item",
		Description:  "old",
		Image:        "data:image/jpeg;base64,abc",
		CategoryName: "Announcements",
		IsActive:     true,
	}

	t.Run("Should keep the stored image when the request omits one", func(t *testing.T) {
		mockRepo := new(MockNewsRepo)
		uc := usecase.NewNewsUsecase(mockRepo, newValidator())
		existing := *stored
		mockRepo.On("GetByID", mock.Anything, int64(4)).Return(&existing, nil).Once()
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		item, err := uc.UpdateNews(context.Background(), 4, validNewsRequest())

		assert.NoError(t, err)
		assert.Equal(t, "data:image/jpeg;base64,abc", item.Image)
		assert.Equal(t, "New Journal Issue Released", item.Title)
	})

	t.Run("Should surface not found from the repository", func(t *testing.T) {
		mockRepo := new(MockNewsRepo)
		uc := usecase.NewNewsUsecase(mockRepo, newValidator())
		mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound).Once()

		_, err := uc.UpdateNews(context.Background(), 99, validNewsRequest())

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestSetNewsImage(t *testing.T) {
	mockRepo := new(MockNewsRepo)
	uc := usecase.NewNewsUsecase(mockRepo, newValidator())
	stored := &domain.NewsItem{ID: 4, Title: "Item", Image: "old"}
	mockRepo.On("GetByID", mock.Anything, int64(4)).Return(stored, nil).Once()
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(item *domain.NewsItem) bool {
		return item.Image == "data:image/jpeg;base64,new"
	})).Return(nil).Once()

	item, err := uc.SetNewsImage(context.Background(), 4, "data:image/jpeg;base64,new")

	assert.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,new", item.Image)
	mockRepo.AssertExpectations(t)
}

func TestDeleteNews(t *testing.T) {
	t.Run("Should not delete a missing item", func(t *testing.T) {
		mockRepo := new(MockNewsRepo)
		uc := usecase.NewNewsUsecase(mockRepo, newValidator())
		mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound).Once()

		err := uc.DeleteNews(context.Background(), 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Should delete an existing item", func(t *testing.T) {
		mockRepo := new(MockNewsRepo)
		uc := usecase.NewNewsUsecase(mockRepo, newValidator())
		mockRepo.On("GetByID", mock.Anything, int64(4)).Return(&domain.NewsItem{ID: 4}, nil).Once()
		mockRepo.On("Delete", mock.Anything, int64(4)).Return(nil).Once()

		assert.NoError(t, uc.DeleteNews(context.Background(), 4))
		mockRepo.AssertExpectations(t)
	})
}
