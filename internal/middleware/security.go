package middleware

import (
	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds the response headers of a JSON-only API. Balances and
// tokens pass through these responses, so nothing may be cached. HSTS is
// only sent in production, where the client sits behind TLS.
func SecurityHeaders(environment string) echo.MiddlewareFunc {
	hsts := environment == "production"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set("X-Content-Type-Options", "nosniff")
			header.Set("X-Frame-Options", "DENY")
			header.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			header.Set("Referrer-Policy", "no-referrer")
			if hsts {
				header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			header.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
			header.Set("Pragma", "no-cache")
			header.Set("Expires", "0")

			return next(c)
		}
	}
}
