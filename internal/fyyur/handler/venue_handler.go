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

type VenueHandler struct {
	service service.VenueService
}

func NewVenueHandler(service service.VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

func (h *VenueHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/venues", h.List)
	r.POST("/venues/search", h.Search)
	r.GET("/venues/create", h.CreateForm)
	r.POST("/venues/create", h.Create)
	r.GET("/venues/:id", h.Detail)
	r.DELETE("/venues/:id", h.Delete)
	r.GET("/venues/:id/edit", h.EditForm)
	r.POST("/venues/:id/edit", h.Edit)
}

// VenueForm 建立與編輯場地的表單欄位
type VenueForm struct {
	Name         string   `form:"name" binding:"required"`
	City         string   `form:"city" binding:"required"`
	State        string   `form:"state" binding:"required"`
	Address      string   `form:"address" binding:"required"`
	Phone        string   `form:"phone"`
	Genres       []string `form:"genres"`
	FacebookLink string   `form:"facebook_link"`
}

func (h *VenueHandler) List(c *gin.Context) {
	groups, err := h.service.ListGroupedByCity(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}
	c.HTML(http.StatusOK, "venues.html", gin.H{
		"areas": groups,
	})
}

func (h *VenueHandler) Search(c *gin.Context) {
	term := c.PostForm("search_term")
	result, err := h.service.Search(c, term)
	if err != nil {
		h.handleError(c, err, "Search")
		return
	}
	c.HTML(http.StatusOK, "search_venues.html", gin.H{
		"results":     result,
		"search_term": term,
	})
}

func (h *VenueHandler) Detail(c *gin.Context) {
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
	c.HTML(http.StatusOK, "show_venue.html", gin.H{
		"venue": page,
		"flash": c.Query("flash"),
	})
}

func (h *VenueHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_venue.html", nil)
}

// Create 不論成敗都回首頁，結果用 flash 訊息呈現
func (h *VenueHandler) Create(c *gin.Context) {
	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		h.logError(err, "Create")
		renderHome(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return
	}

	venue := &model.Venue{
		Name:         form.Name,
		City:         form.City,
		State:        form.State,
		Address:      form.Address,
		Phone:        form.Phone,
		Genres:       model.JoinGenres(form.Genres),
		FacebookLink: form.FacebookLink,
	}

	if _, err := h.service.Create(c, venue); err != nil {
		h.logError(err, "Create")
		renderHome(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return
	}

	renderHome(c, fmt.Sprintf("Venue %s was successfully listed!", form.Name))
}

// Delete 維持 200，結果放在 success 欄位裡，呼叫端要看 body
func (h *VenueHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		h.logError(err, "Delete")
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *VenueHandler) EditForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderErrorPage(c, http.StatusNotFound)
		return
	}
	venue, err := h.service.GetByID(c, id)
	if err != nil {
		h.handleError(c, err, "EditForm")
		return
	}
	c.HTML(http.StatusOK, "edit_venue.html", gin.H{
		"venue":  venue,
		"genres": model.SplitGenres(venue.Genres),
	})
}

func (h *VenueHandler) Edit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderErrorPage(c, http.StatusNotFound)
		return
	}

	redirect := func(flash string) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/venues/%d?flash=%s", id, url.QueryEscape(flash)))
	}

	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		h.logError(err, "Edit")
		redirect("An error occurred while updating Venue info.")
		return
	}

	params := model.UpdateVenueParams{
		Name:         form.Name,
		City:         form.City,
		State:        form.State,
		Address:      form.Address,
		Phone:        form.Phone,
		Genres:       model.JoinGenres(form.Genres),
		FacebookLink: form.FacebookLink,
	}

	if _, err := h.service.Update(c, id, params); err != nil {
		h.logError(err, "Edit")
		redirect("An error occurred while updating Venue info.")
		return
	}

	redirect("Venue info updated successfully.")
}

func (h *VenueHandler) logError(err error, operation string) {
	logger.WithComponent("handler").Warn("venue request failed",
		zap.String("operation", operation), zap.Error(err))
}

func (h *VenueHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrVenueNotFound:
		log.Warn("Venue not found")
		renderErrorPage(c, http.StatusNotFound)
	default:
		log.Error("Unexpected error")
		renderErrorPage(c, http.StatusInternalServerError)
	}
}
