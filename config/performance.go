package config

import (
	"time"

	"orderdesk-backend/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlowRequest is the latency above which a request is logged as slow.
const SlowRequest = 200 * time.Millisecond

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
		}
		if latency > SlowRequest {
			logger.Warn("slow request", fields...)
			return
		}
		logger.Info("request", fields...)
	}
}
