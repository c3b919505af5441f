package middleware

import (
	"github.com/labstack/echo/v4"

	"gyomutime/pkg/errors"
	"gyomutime/pkg/response"
)

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// AdminOnly requires the admin role claim on the verified token. It runs
// after Authenticate and before any payload parsing.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}
		if !user.IsAdmin() {
			return response.Error(c, errors.Forbidden("Admin privileges required", nil))
		}
		return next(c)
	}
}
