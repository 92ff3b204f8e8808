package main

import (
	"log"

	"fyyur-trivia/config"
	"fyyur-trivia/internal/database"
	"fyyur-trivia/internal/fyyur/handler"
	"fyyur-trivia/internal/fyyur/repository"
	"fyyur-trivia/internal/fyyur/service"
	"fyyur-trivia/internal/middleware"
	"fyyur-trivia/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	defer logger.Sync()

	cfg := config.LoadConfig("fyyur")

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	venueRepo := repository.NewVenueRepository(pool)
	artistRepo := repository.NewArtistRepository(pool)
	showRepo := repository.NewShowRepository(pool)

	venueService := service.NewVenueService(venueRepo, showRepo)
	artistService := service.NewArtistService(artistRepo, showRepo)
	showService := service.NewShowService(showRepo)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	router.LoadHTMLGlob("web/templates/*.html")

	handler.RegisterPages(router)
	handler.NewVenueHandler(venueService).RegisterRoutes(router)
	handler.NewArtistHandler(artistService).RegisterRoutes(router)
	handler.NewShowHandler(showService).RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
