package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const RunIDKey = "run_id"

// RunID tags every response with the id of the run whose data it serves
func RunID(runID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(RunIDKey, runID)
		c.Header("X-Run-ID", runID)
		c.Next()
	}
}

// GetRunID retrieves the run ID from the context
func GetRunID(c *gin.Context) (string, bool) {
	runID, exists := c.Get(RunIDKey)
	if !exists {
		return "", false
	}
	return runID.(string), true
}

// RequestLogger logs each request through logrus once it completes
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start).String(),
		}
		if runID, ok := GetRunID(c); ok {
			fields[RunIDKey] = runID
		}

		entry := log.WithFields(fields)
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("request failed")
		case len(c.Errors) > 0:
			entry.Warn(c.Errors.String())
		default:
			entry.Debug("request served")
		}
	}
}
