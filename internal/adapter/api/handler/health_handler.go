package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gyomutime/pkg/response"
)

type HealthHandler struct {
	environment string
	startedAt   time.Time
}

func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{
		environment: environment,
		startedAt:   time.Now(),
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": h.environment,
		"uptime":      time.Since(h.startedAt).Round(time.Second).String(),
	})
}
