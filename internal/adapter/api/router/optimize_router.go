package router

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/handler"
	"gyomutime/internal/adapter/api/middleware"
)

func SetupOptimizeRouter(e *echo.Echo, rateLimiter *middleware.RateLimiter, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	optimizeHandler := handler.GetOptimizeHandler()

	optimize := e.Group("/v1/optimize")
	optimize.Use(rateLimiter.Limit)
	optimize.Use(authMiddleware.Authenticate)
	optimize.Use(adminMiddleware.AdminOnly)
	optimize.POST("", optimizeHandler.RunOptimization)
}
