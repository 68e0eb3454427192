package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IndexPath is where the front-end page is served from.
const IndexPath = "/static/index.html"

// RedirectToIndex handles GET /.
func RedirectToIndex(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, IndexPath)
}

// Healthz handles GET /healthz.
func Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
