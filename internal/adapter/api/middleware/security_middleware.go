package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var securityHeaders = map[string]string{
	"X-Content-Type-Options":    "nosniff",
	"X-Frame-Options":           "DENY",
	"X-XSS-Protection":          "1; mode=block",
	"Strict-Transport-Security": "max-age=31536000; includeSubDomains",
	"Content-Security-Policy":   "default-src 'self'",
	"Referrer-Policy":           "strict-origin-when-cross-origin",
	"Permissions-Policy":        "geolocation=(), microphone=(), camera=()",
}

// Secure attaches the standard security headers and answers CORS
// preflights with 200 for the configured origins.
func Secure(allowedOrigins []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for k, v := range securityHeaders {
				h.Set(k, v)
			}

			origin := c.Request().Header.Get(echo.HeaderOrigin)
			h.Set(echo.HeaderAccessControlAllowOrigin, matchOrigin(allowedOrigins, origin))
			h.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
			h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
			h.Set(echo.HeaderAccessControlMaxAge, "86400")

			if c.Request().Method == http.MethodOptions {
				return c.JSON(http.StatusOK, map[string]bool{"ok": true})
			}
			return next(c)
		}
	}
}

func matchOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if a == origin {
			return origin
		}
	}
	if len(allowed) > 0 {
		return allowed[0]
	}
	return "*"
}
