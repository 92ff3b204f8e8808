package handler

import (
	"net/http"

	"fyyur-trivia/internal/trivia/service"
	apperrors "fyyur-trivia/pkg/app_errors"
	"fyyur-trivia/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/categories", h.List)
}

// List 分類表沒 seed 時回 500，不回空集合
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.Map(c)
	if err != nil {
		log := logger.WithComponent("handler").With(zap.String("operation", "List"), zap.Error(err))
		if err == apperrors.ErrNoCategories {
			log.Warn("Categories not seeded")
		} else {
			log.Error("Unexpected error")
		}
		errorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}
