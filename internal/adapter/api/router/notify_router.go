package router

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/handler"
	"gyomutime/internal/adapter/api/middleware"
)

func SetupNotifyRouter(e *echo.Echo, rateLimiter *middleware.RateLimiter, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	notifyHandler := handler.GetNotifyHandler()

	notify := e.Group("/v1/notify")
	notify.Use(rateLimiter.Limit)
	notify.Use(authMiddleware.Authenticate)
	notify.Use(adminMiddleware.AdminOnly)
	notify.POST("", notifyHandler.SendNotification)
}
