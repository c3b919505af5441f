package router

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/handler"
	"gyomutime/internal/adapter/api/middleware"
)

func SetupElectivesRouter(e *echo.Echo, rateLimiter *middleware.RateLimiter, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	electivesHandler := handler.GetElectivesHandler()

	// The sectioning intake pages work without sign-in.
	public := e.Group("/v1/electives")
	public.Use(rateLimiter.Limit)
	public.GET("/config", electivesHandler.GetConfig)
	public.POST("/requests", electivesHandler.SubmitRequest)
	public.POST("/timetable", electivesHandler.SubmitTimetable)

	admin := e.Group("/v1/electives")
	admin.Use(rateLimiter.Limit)
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.PUT("/config", electivesHandler.SaveConfig)
}
