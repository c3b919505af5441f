package router

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, rateLimiter *middleware.RateLimiter, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, rateLimiter, authMiddleware)
	SetupUserRouter(e, rateLimiter, authMiddleware, adminMiddleware)
	SetupSubmissionRouter(e, rateLimiter, authMiddleware, adminMiddleware)
	SetupStorageRouter(e, rateLimiter, authMiddleware)
	SetupTemplateRouter(e, rateLimiter, authMiddleware, adminMiddleware)
	SetupElectivesRouter(e, rateLimiter, authMiddleware, adminMiddleware)
	SetupNotifyRouter(e, rateLimiter, authMiddleware, adminMiddleware)
	SetupOptimizeRouter(e, rateLimiter, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
