package handler

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/middleware"
	"gyomutime/internal/usecase"
	"gyomutime/pkg/errors"
	"gyomutime/pkg/response"
)

type NotifyHandler struct {
	notifyUseCase *usecase.NotifyUseCase
}

func NewNotifyHandler(notifyUseCase *usecase.NotifyUseCase) *NotifyHandler {
	return &NotifyHandler{
		notifyUseCase: notifyUseCase,
	}
}

type sendNotificationRequest struct {
	To      []string `json:"to" validate:"required,min=1,dive,email"`
	Subject string   `json:"subject" validate:"required,max=200"`
	Body    string   `json:"body" validate:"required"`
}

func (h *NotifyHandler) SendNotification(c echo.Context) error {
	var req sendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.notifyUseCase.Send(c.Request().Context(), middleware.CurrentUser(c), usecase.SendNotificationInput{
		To:      req.To,
		Subject: req.Subject,
		Body:    req.Body,
	}); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{"ok": true})
}
