package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
)

// MockReviewRepository mocks the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, titleID, reviewID int64) (*models.Review, error) {
	args := m.Called(ctx, titleID, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByTitle(ctx context.Context, titleID int64, page, pageSize int) ([]models.Review, int64, error) {
	args := m.Called(ctx, titleID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, titleID, reviewID int64) error {
	args := m.Called(ctx, titleID, reviewID)
	return args.Error(0)
}

// MockTitleFinder mocks the TitleFinder interface
type MockTitleFinder struct {
	mock.Mock
}

func (m *MockTitleFinder) GetByID(ctx context.Context, id int64) (*models.Title, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Title), args.Error(1)
}

func TestReviewCreate_Success(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockTitles := new(MockTitleFinder)
	reviewService := NewReviewService(mockReviewRepo, mockTitles)

	author := &models.User{ID: 5, Username: "reader", Role: models.RoleUser}
	mockTitles.On("GetByID", mock.Anything, int64(10)).Return(&models.Title{ID: 10}, nil)
	mockReviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
		return r.TitleID == 10 && r.AuthorID == 5 && r.Score == 8
	})).Return(nil)

	resp, err := reviewService.Create(context.Background(), 10, author, &dto.CreateReviewDTO{Text: "good one", Score: 8})

	assert.NoError(t, err)
	assert.Equal(t, "reader", resp.Author)
	assert.Equal(t, 8, resp.Score)
	mockReviewRepo.AssertExpectations(t)
}

func TestReviewCreate_TitleMissing(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockTitles := new(MockTitleFinder)
	reviewService := NewReviewService(mockReviewRepo, mockTitles)

	mockTitles.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	author := &models.User{ID: 5, Role: models.RoleUser}
	resp, err := reviewService.Create(context.Background(), 99, author, &dto.CreateReviewDTO{Text: "x", Score: 5})

	assert.ErrorIs(t, err, ErrTitleNotFound)
	assert.Nil(t, resp)
	mockReviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewCreate_SecondReviewConflicts(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockTitles := new(MockTitleFinder)
	reviewService := NewReviewService(mockReviewRepo, mockTitles)

	mockTitles.On("GetByID", mock.Anything, int64(10)).Return(&models.Title{ID: 10}, nil)
	mockReviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Review")).
		Return(&pgconn.PgError{Code: "23505"})

	author := &models.User{ID: 5, Role: models.RoleUser}
	resp, err := reviewService.Create(context.Background(), 10, author, &dto.CreateReviewDTO{Text: "again", Score: 9})

	assert.ErrorIs(t, err, ErrReviewConflict)
	assert.Nil(t, resp)
}

func TestReviewUpdate_StrangerForbidden(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockTitles := new(MockTitleFinder)
	reviewService := NewReviewService(mockReviewRepo, mockTitles)

	mockTitles.On("GetByID", mock.Anything, int64(10)).Return(&models.Title{ID: 10}, nil)
	mockReviewRepo.On("GetByID", mock.Anything, int64(10), int64(3)).
		Return(&models.Review{ID: 3, TitleID: 10, AuthorID: 5}, nil)

	stranger := &models.User{ID: 6, Role: models.RoleUser}
	text := "edited"
	resp, err := reviewService.Update(context.Background(), 10, 3, stranger, &dto.UpdateReviewDTO{Text: &text})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, resp)
	mockReviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReviewDelete_ModeratorAllowed(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockTitles := new(MockTitleFinder)
	reviewService := NewReviewService(mockReviewRepo, mockTitles)

	mockTitles.On("GetByID", mock.Anything, int64(10)).Return(&models.Title{ID: 10}, nil)
	mockReviewRepo.On("GetByID", mock.Anything, int64(10), int64(3)).
		Return(&models.Review{ID: 3, TitleID: 10, AuthorID: 5}, nil)
	mockReviewRepo.On("Delete", mock.Anything, int64(10), int64(3)).Return(nil)

	moderator := &models.User{ID: 7, Role: models.RoleModerator}
	err := reviewService.Delete(context.Background(), 10, 3, moderator)

	assert.NoError(t, err)
	mockReviewRepo.AssertExpectations(t)
}

func TestReviewGet_NotFound(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockTitles := new(MockTitleFinder)
	reviewService := NewReviewService(mockReviewRepo, mockTitles)

	mockTitles.On("GetByID", mock.Anything, int64(10)).Return(&models.Title{ID: 10}, nil)
	mockReviewRepo.On("GetByID", mock.Anything, int64(10), int64(404)).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := reviewService.Get(context.Background(), 10, 404)

	assert.ErrorIs(t, err, ErrReviewNotFound)
	assert.Nil(t, resp)
}

func TestReviewList_Paginates(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockTitles := new(MockTitleFinder)
	reviewService := NewReviewService(mockReviewRepo, mockTitles)

	mockTitles.On("GetByID", mock.Anything, int64(10)).Return(&models.Title{ID: 10}, nil)
	reviews := []models.Review{
		{ID: 1, TitleID: 10, Score: 7, Author: models.User{Username: "a"}},
		{ID: 2, TitleID: 10, Score: 9, Author: models.User{Username: "b"}},
	}
	mockReviewRepo.On("GetByTitle", mock.Anything, int64(10), 1, 20).Return(reviews, int64(42), nil)

	page, err := reviewService.List(context.Background(), 10, 1, 20)

	assert.NoError(t, err)
	assert.Equal(t, 42, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	mockReviewRepo.AssertExpectations(t)
}
