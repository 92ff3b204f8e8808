package handler

import (
	"net/http"
	"strconv"
	"time"

	"fyyur-trivia/internal/fyyur/service"
	"fyyur-trivia/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShowHandler struct {
	service service.ShowService
}

func NewShowHandler(service service.ShowService) *ShowHandler {
	return &ShowHandler{service: service}
}

func (h *ShowHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/shows", h.List)
	r.GET("/shows/create", h.CreateForm)
	r.POST("/shows/create", h.Create)
}

// ShowForm 建立演出的表單欄位，start_time 以字串送進來再解析
type ShowForm struct {
	ArtistID  string `form:"artist_id" binding:"required"`
	VenueID   string `form:"venue_id" binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
}

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
}

func parseStartTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range startTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func (h *ShowHandler) List(c *gin.Context) {
	shows, err := h.service.List(c)
	if err != nil {
		logger.WithComponent("handler").Error("list shows failed", zap.Error(err))
		renderErrorPage(c, http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "shows.html", gin.H{
		"shows": shows,
	})
}

func (h *ShowHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_show.html", nil)
}

func (h *ShowHandler) Create(c *gin.Context) {
	fail := func(err error) {
		logger.WithComponent("handler").Warn("create show failed", zap.Error(err))
		renderHome(c, "An error occurred. Show could not be listed.")
	}

	var form ShowForm
	if err := c.ShouldBind(&form); err != nil {
		fail(err)
		return
	}

	artistID, err := strconv.Atoi(form.ArtistID)
	if err != nil {
		fail(err)
		return
	}
	venueID, err := strconv.Atoi(form.VenueID)
	if err != nil {
		fail(err)
		return
	}
	startTime, err := parseStartTime(form.StartTime)
	if err != nil {
		fail(err)
		return
	}

	if _, err := h.service.Create(c, artistID, venueID, startTime); err != nil {
		fail(err)
		return
	}

	renderHome(c, "Show was successfully listed!")
}
