package middleware

import (
	"github.com/propledger/go-fp-rollup/internal/common/xlog"

	"github.com/labstack/echo/v4"
)

// Context puts a correlation id on the request context. An incoming
// X-Correlation-Id wins, then the echo request id, then a fresh uuid.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()

			id := req.Header.Get(xlog.CorrelationIDHeader)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			if id != "" {
				ctx = xlog.WithCorrelationID(ctx, id)
			} else {
				ctx = xlog.EnsureCorrelationID(ctx)
			}

			c.Response().Header().Set(xlog.CorrelationIDHeader, xlog.CorrelationID(ctx))
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
