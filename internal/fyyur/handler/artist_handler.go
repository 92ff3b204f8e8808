package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"fyyur-trivia/internal/fyyur/model"
	"fyyur-trivia/internal/fyyur/service"
	apperrors "fyyur-trivia/pkg/app_errors"
	"fyyur-trivia/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ArtistHandler struct {
	service service.ArtistService
}

func NewArtistHandler(service service.ArtistService) *ArtistHandler {
	return &ArtistHandler{service: service}
}

func (h *ArtistHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/artists", h.List)
	r.POST("/artists/search", h.Search)
	r.GET("/artists/create", h.CreateForm)
	r.POST("/artists/create", h.Create)
	r.GET("/artists/:id", h.Detail)
	r.GET("/artists/:id/edit", h.EditForm)
	r.POST("/artists/:id/edit", h.Edit)
}

// ArtistForm 建立與編輯音樂人的表單欄位
type ArtistForm struct {
	Name         string   `form:"name" binding:"required"`
	City         string   `form:"city" binding:"required"`
	State        string   `form:"state" binding:"required"`
	Phone        string   `form:"phone"`
	Genres       []string `form:"genres"`
	FacebookLink string   `form:"facebook_link"`
}

func (h *ArtistHandler) List(c *gin.Context) {
	artists, err := h.service.List(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.HTML(http.StatusOK, "artists.html", gin.H{
		"artists": artists,
	})
}

func (h *ArtistHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	result, err := h.service.Search(c, term)
	if err != nil {
		h.handleError(c, err, "Search")
		return
	}
	c.HTML(http.StatusOK, "search_artists.html", gin.H{
		"results":     result,
		"search_term": term,
	})
}

func (h *ArtistHandler) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderErrorPage(c, http.StatusNotFound)
		return
	}
	page, err := h.service.GetPage(c, id)
	if err != nil {
		h.handleError(c, err, "Detail")
		return
	}
	c.HTML(http.StatusOK, "show_artist.html", gin.H{
		"artist": page,
		"flash":  c.Query("flash"),
	})
}

func (h *ArtistHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_artist.html", nil)
}

func (h *ArtistHandler) Create(c *gin.Context) {
	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		h.logError(err, "Create")
		renderHome(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return
	}

	artist := &model.Artist{
		Name:         form.Name,
		City:         form.City,
		State:        form.State,
		Phone:        form.Phone,
		Genres:       model.JoinGenres(form.Genres),
		FacebookLink: form.FacebookLink,
	}

	if _, err := h.service.Create(c, artist); err != nil {
		h.logError(err, "Create")
		renderHome(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return
	}

	renderHome(c, fmt.Sprintf("Artist %s was successfully listed!", form.Name))
}

func (h *ArtistHandler) EditForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderErrorPage(c, http.StatusNotFound)
		return
	}
	artist, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	c.HTML(http.StatusOK, "edit_artist.html", gin.H{
		"artist": artist,
		"genres": model.SplitGenres(artist.Genres),
	})
}

func (h *ArtistHandler) Edit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderErrorPage(c, http.StatusNotFound)
		return
	}

	redirect := func(flash string) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/artists/%d?flash=%s", id, url.QueryEscape(flash)))
	}

	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		h.logError(err, "Edit")
		redirect("An error occurred while updating Artist info.")
		return
	}

	params := model.UpdateArtistParams{
		Name:         form.Name,
		City:         form.City,
		State:        form.State,
		Phone:        form.Phone,
		Genres:       model.JoinGenres(form.Genres),
		FacebookLink: form.FacebookLink,
	}

	if _, err := h.service.Update(c, id, params); err != nil {
		h.logError(err, "Edit")
		redirect("An error occurred while updating Artist info.")
		return
	}

	redirect("Artist info updated successfully.")
}

func (h *ArtistHandler) logError(err error, operation string) {
	logger.WithComponent("handler").Warn("artist request failed",
		zap.String("operation", operation), zap.Error(err))
}

func (h *ArtistHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrArtistNotFound:
		log.Warn("Artist not found")
		renderErrorPage(c, http.StatusNotFound)
	default:
		log.Error("Unexpected error")
		renderErrorPage(c, http.StatusInternalServerError)
	}
}
