package middleware

import (
	"strconv"
	"time"

	"hello-service/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and duration per route.
// Requests that match no route share the "unmatched" label.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = metrics.RouteUnmatched
		}
		method := c.Request.Method

		metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
