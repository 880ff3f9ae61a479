package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"reviewhub/internal/api/dto"
	"reviewhub/internal/api/models"
	"reviewhub/internal/api/service"
)

func setupCategoryRouter(authService service.AuthService) *gin.Engine {
	router := setupRouter()
	v1 := router.Group("/api/v1")
	// The write paths below never reach the service: the middleware
	// chain rejects them first.
	NewCategoryHandler(service.NewCategoryService(nil)).RegisterRoutes(v1, authService)
	return router
}

func TestCategoryCreate_Anonymous(t *testing.T) {
	router := setupCategoryRouter(new(MockAuthService))

	body, _ := json.Marshal(dto.CreateCategoryDTO{Name: "Movies", Slug: "movies"})
	req, _ := http.NewRequest("POST", "/api/v1/categories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCategoryCreate_NonAdmin(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := setupCategoryRouter(mockAuthService)

	user := &models.User{ID: 5, Username: "reader", Role: models.RoleUser, IsActive: true}
	mockAuthService.On("Authenticate", mock.Anything, "session-token").Return(user, nil)

	body, _ := json.Marshal(dto.CreateCategoryDTO{Name: "Movies", Slug: "movies"})
	req, _ := http.NewRequest("POST", "/api/v1/categories", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer session-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCategoryDelete_ModeratorStillForbidden(t *testing.T) {
	mockAuthService := new(MockAuthService)
	router := setupCategoryRouter(mockAuthService)

	moderator := &models.User{ID: 7, Username: "mod", Role: models.RoleModerator, IsActive: true}
	mockAuthService.On("Authenticate", mock.Anything, "session-token").Return(moderator, nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/categories/movies", nil)
	req.Header.Set("Authorization", "Bearer session-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
