package handler

import (
	"net/http"

	"fyyur-trivia/internal/trivia/model"
	"fyyur-trivia/internal/trivia/service"
	"fyyur-trivia/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizHandler struct {
	service service.QuizService
}

func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

func (h *QuizHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/quizzes", h.Play)
}

// Play 題目抽完時回 question: null，讓前端結束這一輪
func (h *QuizHandler) Play(c *gin.Context) {
	var req model.QuizRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	question, err := h.service.NextQuestion(c, req.PreviousQuestions, req.QuizCategory.ID)
	if err != nil {
		logger.WithComponent("handler").Error("quiz draw failed",
			zap.String("operation", "Play"), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}
