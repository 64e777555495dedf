// Package logging configures the process-wide structured logger and the
// request log middleware.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// Setup installs a JSON slog logger as the process default and returns it.
func Setup(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

// RequestLogger logs one line per request with method, path, status,
// duration and the authenticated user id when present.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
		}
		if uid := c.GetString("userID"); uid != "" {
			attrs = append(attrs, "user_id", uid)
		}

		if c.Writer.Status() >= 500 {
			logger.Error("request", attrs...)
		} else {
			logger.Info("request", attrs...)
		}
	}
}
