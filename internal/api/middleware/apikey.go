package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// APIKeyHeader carries the management API key.
const APIKeyHeader = "X-API-Key"

// APIKey returns Echo middleware that guards every path under prefix with
// a static key. With no key configured the guarded paths answer 503 so
// that an unconfigured deployment is never left open.
func APIKey(key, prefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Request().URL.Path, prefix) {
				return next(c)
			}

			if key == "" {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"error": "API key not configured",
				})
			}

			got := c.Request().Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid or missing API key",
				})
			}

			return next(c)
		}
	}
}
