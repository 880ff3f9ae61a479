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

func TestUserCreate_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	resp, err := userService.Create(context.Background(), &dto.CreateUserDTO{
		Username: "testuser",
		Email:    "test@example.com",
		Role:     "moderator",
	})

	assert.NoError(t, err)
	assert.Equal(t, "testuser", resp.Username)
	assert.Equal(t, "moderator", resp.Role)
	mockUserRepo.AssertExpectations(t)
}

func TestUserCreate_DefaultRole(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	mockUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleUser && u.IsActive
	})).Return(nil)

	resp, err := userService.Create(context.Background(), &dto.CreateUserDTO{
		Username: "testuser",
		Email:    "test@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "user", resp.Role)
	mockUserRepo.AssertExpectations(t)
}

func TestUserCreate_ReservedUsername(t *testing.T) {
	userService := NewUserService(new(MockUserRepository))

	resp, err := userService.Create(context.Background(), &dto.CreateUserDTO{
		Username: "me",
		Email:    "me@example.com",
	})

	assert.ErrorIs(t, err, ErrReservedUsername)
	assert.Nil(t, resp)
}

func TestUserCreate_Conflict(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	mockUserRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Return(&pgconn.PgError{Code: "23505"})

	resp, err := userService.Create(context.Background(), &dto.CreateUserDTO{
		Username: "testuser",
		Email:    "taken@example.com",
	})

	assert.ErrorIs(t, err, ErrUserConflict)
	assert.Nil(t, resp)
}

func TestUserUpdate_ChangesRole(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	existing := &models.User{ID: 1, Username: "testuser", Email: "test@example.com", Role: models.RoleUser}
	mockUserRepo.On("FindByUsername", mock.Anything, "testuser").Return(existing, nil)
	mockUserRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleModerator
	})).Return(nil)

	role := "moderator"
	resp, err := userService.Update(context.Background(), "testuser", &dto.UpdateUserDTO{Role: &role})

	assert.NoError(t, err)
	assert.Equal(t, "moderator", resp.Role)
	mockUserRepo.AssertExpectations(t)
}

func TestUserUpdate_NotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	mockUserRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	resp, err := userService.Update(context.Background(), "ghost", &dto.UpdateUserDTO{})

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, resp)
}

func TestUserDelete_NotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	mockUserRepo.On("Delete", mock.Anything, "ghost").Return(gorm.ErrRecordNotFound)

	err := userService.Delete(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateMe_NeverTouchesRole(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	me := &models.User{ID: 1, Username: "testuser", Email: "old@example.com", Role: models.RoleUser}
	mockUserRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Role == models.RoleUser && u.Email == "new@example.com"
	})).Return(nil)

	email := "new@example.com"
	resp, err := userService.UpdateMe(context.Background(), me, &dto.UpdateMeDTO{Email: &email})

	assert.NoError(t, err)
	assert.Equal(t, "user", resp.Role)
	assert.Equal(t, "new@example.com", resp.Email)
	mockUserRepo.AssertExpectations(t)
}

func TestCanModify(t *testing.T) {
	owner := &models.User{ID: 1, Role: models.RoleUser}
	stranger := &models.User{ID: 2, Role: models.RoleUser}
	moderator := &models.User{ID: 3, Role: models.RoleModerator}
	admin := &models.User{ID: 4, Role: models.RoleAdmin}

	assert.True(t, CanModify(owner, 1))
	assert.False(t, CanModify(stranger, 1))
	assert.True(t, CanModify(moderator, 1))
	assert.True(t, CanModify(admin, 1))
	assert.False(t, CanModify(nil, 1))
}
