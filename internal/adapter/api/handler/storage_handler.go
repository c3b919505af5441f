package handler

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/middleware"
	"gyomutime/internal/usecase"
	"gyomutime/pkg/errors"
	"gyomutime/pkg/response"
)

type StorageHandler struct {
	storageUseCase *usecase.StorageUseCase
}

func NewStorageHandler(storageUseCase *usecase.StorageUseCase) *StorageHandler {
	return &StorageHandler{
		storageUseCase: storageUseCase,
	}
}

type createUploadURLRequest struct {
	SubmissionID string `json:"submissionId,omitempty"`
	Filename     string `json:"filename" validate:"required"`
	ContentType  string `json:"contentType" validate:"required"`
	Size         int64  `json:"size" validate:"min=0"`
}

func (h *StorageHandler) CreateUploadURL(c echo.Context) error {
	var req createUploadURLRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.storageUseCase.CreateUploadURL(c.Request().Context(), middleware.CurrentUser(c), req.SubmissionID, req.Filename, req.ContentType, req.Size)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, ticket)
}

type createDownloadURLRequest struct {
	StoragePath string `json:"storagePath" validate:"required"`
}

func (h *StorageHandler) CreateDownloadURL(c echo.Context) error {
	var req createDownloadURLRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.storageUseCase.CreateDownloadURL(c.Request().Context(), middleware.CurrentUser(c), req.StoragePath)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, ticket)
}
