package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorResponse 統一的錯誤信封：{success, error, message}，HTTP 狀態碼一致
func errorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   status,
		"message": message,
	})
}

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorResponse(c, http.StatusBadRequest, "bad request")
		return err
	}
	return nil
}

// RegisterBase 健康檢查與 404 信封
func RegisterBase(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"health":  "Running!!",
		})
	})
	r.NoRoute(func(c *gin.Context) {
		errorResponse(c, http.StatusNotFound, "resource not found")
	})
}
