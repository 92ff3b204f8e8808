package main

import (
	"log"

	"fyyur-trivia/config"
	"fyyur-trivia/internal/database"
	"fyyur-trivia/internal/middleware"
	"fyyur-trivia/internal/trivia/handler"
	"fyyur-trivia/internal/trivia/repository"
	"fyyur-trivia/internal/trivia/service"
	"fyyur-trivia/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	defer logger.Sync()

	cfg := config.LoadConfig("trivia")

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	questionRepo := repository.NewQuestionRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)

	questionService := service.NewQuestionService(questionRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	quizService := service.NewQuizService(questionRepo, nil)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.CORS(), gin.Recovery())

	handler.RegisterBase(router)
	handler.NewCategoryHandler(categoryService).RegisterRoutes(router)
	handler.NewQuestionHandler(questionService, categoryService).RegisterRoutes(router)
	handler.NewQuizHandler(quizService).RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
