package handlers

import (
	"net/http"

	"hello-service/services"

	"github.com/gin-gonic/gin"
)

// NotFound answers requests that match no route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, services.Detail(http.StatusText(http.StatusNotFound)))
}

// MethodNotAllowed answers requests whose path matches a route registered
// for other methods. Only reached when HandleMethodNotAllowed is on.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, services.Detail(http.StatusText(http.StatusMethodNotAllowed)))
}
