package http

import (
	"time"

	"gaus-thesis/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs every request and carries the request ID into the request
// context so service logs can be correlated.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = req.Header.Get(echo.HeaderXRequestID)
			}
			ctx := logger.WithRequestID(req.Context(), requestID)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.InfoContext(ctx, "HTTP request",
				logger.StringField("method", req.Method),
				logger.StringField("uri", req.RequestURI),
				logger.IntField("status", c.Response().Status),
				logger.DurationField("latency", time.Since(start)),
			)
			return nil
		}
	}
}
