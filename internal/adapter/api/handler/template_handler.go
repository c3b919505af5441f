package handler

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/middleware"
	"gyomutime/internal/usecase"
	"gyomutime/pkg/errors"
	"gyomutime/pkg/response"
)

type TemplateHandler struct {
	templateUseCase *usecase.TemplateUseCase
}

func NewTemplateHandler(templateUseCase *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{
		templateUseCase: templateUseCase,
	}
}

type createTemplateRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description,omitempty" validate:"max=5000"`
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	Size        int64  `json:"size" validate:"min=0"`
}

func (h *TemplateHandler) CreateTemplate(c echo.Context) error {
	var req createTemplateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.templateUseCase.Create(c.Request().Context(), middleware.CurrentUser(c), usecase.CreateTemplateInput{
		Title:       req.Title,
		Description: req.Description,
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Size:        req.Size,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, ticket)
}

func (h *TemplateHandler) ListTemplates(c echo.Context) error {
	templates, err := h.templateUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"templates": templates,
	})
}

type updateTemplateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
}

func (h *TemplateHandler) UpdateTemplate(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Template ID is required", nil))
	}

	var req updateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	if req.Title == nil && req.Description == nil {
		return response.Error(c, errors.BadRequest("nothing to update", nil))
	}

	if err := h.templateUseCase.UpdateMeta(c.Request().Context(), id, req.Title, req.Description); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{"ok": true})
}

type replaceTemplateFileRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	Size        int64  `json:"size" validate:"min=0"`
}

func (h *TemplateHandler) ReplaceTemplateFile(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Template ID is required", nil))
	}

	var req replaceTemplateFileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.templateUseCase.ReplaceFile(c.Request().Context(), id, req.Filename, req.ContentType, req.Size)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, ticket)
}

type templateDownloadURLRequest struct {
	ID string `json:"id" validate:"required"`
}

// TemplateDownloadURL is unauthenticated: the template catalog is public.
func (h *TemplateHandler) TemplateDownloadURL(c echo.Context) error {
	var req templateDownloadURLRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.templateUseCase.DownloadURL(c.Request().Context(), req.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, ticket)
}

func (h *TemplateHandler) DeleteTemplate(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Template ID is required", nil))
	}

	if err := h.templateUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{"ok": true})
}
