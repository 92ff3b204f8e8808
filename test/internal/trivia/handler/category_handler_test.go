package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fyyur-trivia/internal/trivia/handler"
	apperrors "fyyur-trivia/pkg/app_errors"
	"fyyur-trivia/test/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCategoryTestRouter(mockService *mocks.CategoryServiceMock) *gin.Engine {
	router := newTestRouter()
	handler.NewCategoryHandler(mockService).RegisterRoutes(router)
	return router
}

func TestListCategories(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewCategoryServiceMock()
		router := setupCategoryTestRouter(mockService)

		mockService.On("Map", mock.Anything).Return(map[int]string{
			1: "Science",
			2: "Art",
		}, nil).Once()

		req := httptest.NewRequest("GET", "/categories", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success": true, "categories": {"1": "Science", "2": "Art"}}`, w.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("NoCategoriesSeeded", func(t *testing.T) {
		mockService := mocks.NewCategoryServiceMock()
		router := setupCategoryTestRouter(mockService)

		mockService.On("Map", mock.Anything).Return(nil, apperrors.ErrNoCategories).Once()

		req := httptest.NewRequest("GET", "/categories", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success": false, "error": 500, "message": "internal server error"}`, w.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := mocks.NewCategoryServiceMock()
		router := setupCategoryTestRouter(mockService)

		mockService.On("Map", mock.Anything).Return(nil, errBoom).Once()

		req := httptest.NewRequest("GET", "/categories", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertExpectations(t)
	})
}
