package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"gyomutime/internal/domain/entity"
	"gyomutime/internal/domain/service"
	"gyomutime/pkg/errors"
	"gyomutime/pkg/response"
)

const userContextKey = "user"

type AuthMiddleware struct {
	verifier service.TokenVerifier
}

func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate extracts and verifies the bearer token, then stores the
// verified identity on the request context. Identity is never read from
// anywhere but this context entry.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Missing or invalid Bearer token", nil))
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			return response.Error(c, errors.Unauthorized("Missing or invalid Bearer token", nil))
		}

		user, err := m.verifier.VerifyIDToken(c.Request().Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			return response.Error(c, err)
		}

		c.Set(userContextKey, user)
		return next(c)
	}
}

// CurrentUser returns the verified identity set by Authenticate.
func CurrentUser(c echo.Context) *entity.AuthUser {
	if user, ok := c.Get(userContextKey).(*entity.AuthUser); ok {
		return user
	}
	return nil
}
