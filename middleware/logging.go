// Package middleware provides gin middleware shared by every route.
package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"hello-service/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// CloudTraceHeader is set by the Cloud Run front end on every request
	CloudTraceHeader = "X-Cloud-Trace-Context"

	// TraceLogField links a log entry to its Cloud Trace span
	TraceLogField = "logging.googleapis.com/trace"
)

// LoggingMiddleware - HTTP 요청 로깅 미들웨어
//
// projectID enables trace correlation; leave it empty outside Google Cloud.
func LoggingMiddleware(projectID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// 요청 처리 전
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", GetRequestID(c)),
		}
		if trace := traceResource(projectID, c.GetHeader(CloudTraceHeader)); trace != "" {
			fields = append(fields, zap.String(TraceLogField, trace))
		}

		// 요청 처리 후 로깅
		logger.Logger.Log(levelForStatus(status), "HTTP 요청", fields...)
	}
}

func levelForStatus(status int) zapcore.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= http.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// traceResource turns "TRACE_ID/SPAN_ID;o=1" into
// "projects/PROJECT/traces/TRACE_ID".
func traceResource(projectID, header string) string {
	if projectID == "" || header == "" {
		return ""
	}
	traceID, _, _ := strings.Cut(header, "/")
	if traceID == "" {
		return ""
	}
	return fmt.Sprintf("projects/%s/traces/%s", projectID, traceID)
}
