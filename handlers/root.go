package handlers

import (
	"net/http"

	"hello-service/services"

	"github.com/gin-gonic/gin"
)

// Root returns the greeting
// GET /
//
// Response:
//
//	200: {"Hello": "Cloud Run"}
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, services.Greeting())
}
