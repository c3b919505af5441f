package router

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/handler"
	"gyomutime/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, rateLimiter *middleware.RateLimiter, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Super-admin gating happens in the use case: these routes only require
	// a verified token.
	auth := e.Group("/v1/auth")
	auth.Use(rateLimiter.Limit)
	auth.Use(authMiddleware.Authenticate)
	auth.GET("/me", authHandler.Me)
	auth.POST("/bootstrap-admin", authHandler.BootstrapAdmin)
	auth.POST("/verify-admin", authHandler.VerifyAdmin)
	auth.POST("/set-admin", authHandler.SetAdmin)
	auth.POST("/admin-code", authHandler.SetAdminCode)
}
