package router

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/handler"
	"gyomutime/internal/adapter/api/middleware"
)

func SetupTemplateRouter(e *echo.Echo, rateLimiter *middleware.RateLimiter, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	templateHandler := handler.GetTemplateHandler()

	// Catalog reads are public.
	public := e.Group("/v1/templates")
	public.Use(rateLimiter.Limit)
	public.GET("", templateHandler.ListTemplates)
	public.POST("/download-url", templateHandler.TemplateDownloadURL)

	admin := e.Group("/v1/templates")
	admin.Use(rateLimiter.Limit)
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", templateHandler.CreateTemplate)
	admin.PATCH("/:id", templateHandler.UpdateTemplate)
	admin.POST("/:id/file", templateHandler.ReplaceTemplateFile)
	admin.DELETE("/:id", templateHandler.DeleteTemplate)
}
