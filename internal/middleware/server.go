package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Deepanshu41008/Yapassio-platform/internal/logger"
)

const ctxRequestIDKey = "requestID"

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ctxRequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggingMiddleware writes one structured line per request, leveled by the
// response status.
func LoggingMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"request_id": c.GetString(ctxRequestIDKey),
			"client_ip":  c.ClientIP(),
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"duration":   time.Since(start).String(),
			"size_bytes": c.Writer.Size(),
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("http server error", fields)
		case c.Writer.Status() >= 400:
			log.Warn("http client error", fields)
		default:
			log.Info("http request", fields)
		}
	}
}
