package handler

import (
	"net/http"
	"strconv"

	"fyyur-trivia/internal/trivia/model"
	"fyyur-trivia/internal/trivia/service"
	apperrors "fyyur-trivia/pkg/app_errors"
	"fyyur-trivia/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	service         service.QuestionService
	categoryService service.CategoryService
}

func NewQuestionHandler(service service.QuestionService, categoryService service.CategoryService) *QuestionHandler {
	return &QuestionHandler{service: service, categoryService: categoryService}
}

func (h *QuestionHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/questions", h.List)
	r.POST("/questions", h.Create)
	r.DELETE("/questions/:id", h.Delete)
	r.POST("/questions/search", h.Search)
	r.GET("/categories/:id/questions", h.ListByCategory)
}

// List 子字串搜尋加上分類過濾，page 從 1 起算、每頁固定 10 筆
func (h *QuestionHandler) List(c *gin.Context) {
	term := c.Query("search_term")
	category := c.Query("current_category")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	questions, total, err := h.service.Paginated(c, term, category, page)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}

	categories, err := h.categoryService.MapAllowEmpty(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        questions,
		"total_questions":  total,
		"categories":       categories,
		"current_category": category,
		"search_term":      term,
	})
}

func (h *QuestionHandler) Create(c *gin.Context) {
	var req model.CreateQuestionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if _, err := h.service.Create(c, req); err != nil {
		h.handleError(c, err, "Create")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorResponse(c, http.StatusNotFound, "resource not found")
		return
	}

	if err := h.service.DeleteByID(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// Search 與 List 同樣的過濾條件，但只回第一頁、不再分頁
func (h *QuestionHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	questions, total, err := h.service.FirstPage(c, req.SearchTerm, req.CurrentCategory)
	if err != nil {
		h.handleError(c, err, "Search")
		return
	}

	categories, err := h.categoryService.MapAllowEmpty(c)
	if err != nil {
		h.handleError(c, err, "Search")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        questions,
		"total_questions":  total,
		"categories":       categories,
		"current_category": req.CurrentCategory,
		"search_term":      req.SearchTerm,
	})
}

func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	category := c.Param("id")
	term := c.Query("search_term")

	questions, total, err := h.service.FirstPage(c, term, category)
	if err != nil {
		h.handleError(c, err, "ListByCategory")
		return
	}

	categories, err := h.categoryService.MapAllowEmpty(c)
	if err != nil {
		h.handleError(c, err, "ListByCategory")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        questions,
		"total_questions":  total,
		"categories":       categories,
		"current_category": category,
		"search_term":      term,
	})
}

func (h *QuestionHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrQuestionNotFound:
		log.Warn("Question not found")
		errorResponse(c, http.StatusNotFound, "resource not found")
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		errorResponse(c, http.StatusUnprocessableEntity, "unprocessable")
	default:
		log.Error("Unexpected error")
		errorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
