package router

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/handler"
	"gyomutime/internal/adapter/api/middleware"
)

func SetupStorageRouter(e *echo.Echo, rateLimiter *middleware.RateLimiter, authMiddleware *middleware.AuthMiddleware) {
	storageHandler := handler.GetStorageHandler()

	storage := e.Group("/v1/storage")
	storage.Use(rateLimiter.Limit)
	storage.Use(authMiddleware.Authenticate)
	storage.POST("/upload-url", storageHandler.CreateUploadURL)
	storage.POST("/download-url", storageHandler.CreateDownloadURL)
}
