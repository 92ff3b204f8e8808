package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func renderHome(c *gin.Context, flash string) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"flash": flash,
	})
}

func renderErrorPage(c *gin.Context, status int) {
	switch status {
	case http.StatusNotFound:
		c.HTML(http.StatusNotFound, "404.html", nil)
	default:
		c.HTML(http.StatusInternalServerError, "500.html", nil)
	}
}

// RegisterPages 首頁與 404 頁
func RegisterPages(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		renderHome(c, "")
	})
	r.NoRoute(func(c *gin.Context) {
		renderErrorPage(c, http.StatusNotFound)
	})
}
