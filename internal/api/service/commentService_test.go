package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
)

// MockCommentRepository mocks the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, reviewID, commentID int64) (*models.Comment, error) {
	args := m.Called(ctx, reviewID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByReview(ctx context.Context, reviewID int64, page, pageSize int) ([]models.Comment, int64, error) {
	args := m.Called(ctx, reviewID, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, reviewID, commentID int64) error {
	args := m.Called(ctx, reviewID, commentID)
	return args.Error(0)
}

func TestCommentCreate_Success(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockReviewRepo := new(MockReviewRepository)
	commentService := NewCommentService(mockCommentRepo, mockReviewRepo)

	mockReviewRepo.On("GetByID", mock.Anything, int64(10), int64(3)).
		Return(&models.Review{ID: 3, TitleID: 10}, nil)
	mockCommentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
		return c.ReviewID == 3 && c.AuthorID == 5
	})).Return(nil)

	author := &models.User{ID: 5, Username: "reader", Role: models.RoleUser}
	resp, err := commentService.Create(context.Background(), 10, 3, author, &dto.CreateCommentDTO{Text: "agreed"})

	assert.NoError(t, err)
	assert.Equal(t, "reader", resp.Author)
	mockCommentRepo.AssertExpectations(t)
}

func TestCommentCreate_ReviewMissing(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockReviewRepo := new(MockReviewRepository)
	commentService := NewCommentService(mockCommentRepo, mockReviewRepo)

	mockReviewRepo.On("GetByID", mock.Anything, int64(10), int64(99)).
		Return(nil, gorm.ErrRecordNotFound)

	author := &models.User{ID: 5, Role: models.RoleUser}
	resp, err := commentService.Create(context.Background(), 10, 99, author, &dto.CreateCommentDTO{Text: "x"})

	assert.ErrorIs(t, err, ErrReviewNotFound)
	assert.Nil(t, resp)
	mockCommentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentUpdate_StrangerForbidden(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockReviewRepo := new(MockReviewRepository)
	commentService := NewCommentService(mockCommentRepo, mockReviewRepo)

	mockReviewRepo.On("GetByID", mock.Anything, int64(10), int64(3)).
		Return(&models.Review{ID: 3, TitleID: 10}, nil)
	mockCommentRepo.On("GetByID", mock.Anything, int64(3), int64(8)).
		Return(&models.Comment{ID: 8, ReviewID: 3, AuthorID: 5}, nil)

	stranger := &models.User{ID: 6, Role: models.RoleUser}
	text := "edited"
	resp, err := commentService.Update(context.Background(), 10, 3, 8, stranger, &dto.UpdateCommentDTO{Text: &text})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, resp)
}

func TestCommentDelete_OwnerAllowed(t *testing.T) {
	mockCommentRepo := new(MockCommentRepository)
	mockReviewRepo := new(MockReviewRepository)
	commentService := NewCommentService(mockCommentRepo, mockReviewRepo)

	mockReviewRepo.On("GetByID", mock.Anything, int64(10), int64(3)).
		Return(&models.Review{ID: 3, TitleID: 10}, nil)
	mockCommentRepo.On("GetByID", mock.Anything, int64(3), int64(8)).
		Return(&models.Comment{ID: 8, ReviewID: 3, AuthorID: 5}, nil)
	mockCommentRepo.On("Delete", mock.Anything, int64(3), int64(8)).Return(nil)

	owner := &models.User{ID: 5, Role: models.RoleUser}
	err := commentService.Delete(context.Background(), 10, 3, 8, owner)

	assert.NoError(t, err)
	mockCommentRepo.AssertExpectations(t)
}
