package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/communityrides/ride-matcher/pkg/logger"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests: method, path, status, latency.
func RequestLogger(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", latency),
		}

		reqLogger := logger.WithContext(c.Request.Context())
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
			reqLogger.Error("request completed with errors", fields...)
		} else {
			reqLogger.Info("request completed", fields...)
		}
	}
}
