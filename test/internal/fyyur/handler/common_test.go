package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

var errBoom = errors.New("db error")

// newTestRouter 載入真正的模板，確認 render 路徑也能跑
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../../../../web/templates/*.html")
	return router
}

// createFormRequest 組 form-encoded 請求
func createFormRequest(method, target string, form url.Values) *http.Request {
	req, err := http.NewRequest(method, target, strings.NewReader(form.Encode()))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
