package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RequestLogger returns a middleware that logs every request with structured
// fields once the handler chain has completed.
// Server errors are logged at error level, client errors at warn level.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		// Process the request
		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(log.Fields{
			"method":    c.Request.Method,
			"path":      path,
			"status":    status,
			"duration":  time.Since(start).String(),
			"client_ip": c.ClientIP(),
		})

		switch {
		case status >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case status >= http.StatusBadRequest:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed")
		}
	}
}
