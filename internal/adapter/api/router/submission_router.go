package router

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/handler"
	"gyomutime/internal/adapter/api/middleware"
)

func SetupSubmissionRouter(e *echo.Echo, rateLimiter *middleware.RateLimiter, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	submissionHandler := handler.GetSubmissionHandler()

	submissions := e.Group("/v1/submissions")
	submissions.Use(rateLimiter.Limit)
	submissions.Use(authMiddleware.Authenticate)
	submissions.POST("", submissionHandler.CreateSubmission)
	submissions.GET("", submissionHandler.ListSubmissions)
	submissions.GET("/:id", submissionHandler.GetSubmission)
	submissions.POST("/:id/messages", submissionHandler.AppendMessage)

	admin := e.Group("/v1/submissions")
	admin.Use(rateLimiter.Limit)
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("/:id/status", submissionHandler.UpdateStatus)
	admin.POST("/:id/results", submissionHandler.AppendResult)
}
