package middleware

import (
	"log/slog"
	"time"

	"housekeep/config"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs a structured line per request.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new request logging middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg != nil && cfg.Env.Debug,
	}
}

// Handle wraps the next handler with request logging.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		res := c.Response()

		attrs := []any{
			"method", req.Method,
			"path", req.URL.Path,
			"status", res.Status,
			"duration", time.Since(start),
		}
		if err != nil {
			attrs = append(attrs, "error", err.Error())
		}

		if res.Status >= 500 {
			m.logger.Error("request completed", attrs...)
		} else if m.debug || res.Status >= 400 {
			m.logger.Info("request completed", attrs...)
		} else {
			m.logger.Debug("request completed", attrs...)
		}

		return nil
	}
}
