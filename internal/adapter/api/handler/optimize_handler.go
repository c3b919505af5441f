package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"gyomutime/internal/infrastructure/optimizer"
	"gyomutime/pkg/errors"
	"gyomutime/pkg/logger"
	"gyomutime/pkg/response"
)

type OptimizeHandler struct {
	optimizerClient *optimizer.Client
}

func NewOptimizeHandler(optimizerClient *optimizer.Client) *OptimizeHandler {
	return &OptimizeHandler{
		optimizerClient: optimizerClient,
	}
}

type runOptimizationRequest struct {
	Requirements string      `json:"requirements" validate:"required"`
	Payload      interface{} `json:"payload,omitempty"`
}

// RunOptimization submits a job to the external optimizer and relays its
// event stream to the caller as server-sent events. The subscription lives
// exactly as long as this request.
func (h *OptimizeHandler) RunOptimization(c echo.Context) error {
	if h.optimizerClient == nil {
		return response.Error(c, errors.NotConfigured("optimizer not configured"))
	}

	var req runOptimizationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ctx := c.Request().Context()
	job, err := h.optimizerClient.Submit(ctx, req.Requirements, req.Payload)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to submit optimization job", err))
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	writeEvent(res, optimizer.Event{Type: optimizer.EventProgress, Text: "job " + job.ID + " accepted"})

	if err := h.optimizerClient.Subscribe(ctx, job, func(ev optimizer.Event) {
		writeEvent(res, ev)
	}); err != nil {
		logger.Error("optimizer subscription for job %s ended: %v", job.ID, err)
		writeEvent(res, optimizer.Event{Type: optimizer.EventError, Message: "subscription lost"})
	}

	return nil
}

func writeEvent(res *echo.Response, ev optimizer.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	fmt.Fprintf(res, "data: %s\n\n", data)
	res.Flush()
}
