package handlers

import (
	"net/http"

	"hello-service/services"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns the health status of the service
// GET /healthz
//
// Response:
//
//	200: {"status": "healthy"}
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, services.Health())
}
