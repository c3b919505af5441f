package handler

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/middleware"
	"gyomutime/internal/usecase"
	"gyomutime/pkg/errors"
	"gyomutime/pkg/response"
)

type SubmissionHandler struct {
	submissionUseCase *usecase.SubmissionUseCase
}

func NewSubmissionHandler(submissionUseCase *usecase.SubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUseCase: submissionUseCase,
	}
}

type fileMetaRequest struct {
	Name        string `json:"name" validate:"required"`
	Size        int64  `json:"size" validate:"min=0"`
	ContentType string `json:"contentType" validate:"required"`
}

type groupingRequest struct {
	ContactName  string `json:"contactName,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	MaxPerClass  int    `json:"maxPerClass,omitempty"`
	MinSlots     int    `json:"minSlots,omitempty"`
	MaxSlots     int    `json:"maxSlots,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

type createSubmissionRequest struct {
	Title       string            `json:"title" validate:"required,max=100"`
	Description string            `json:"description,omitempty" validate:"max=5000"`
	Category    string            `json:"category" validate:"required"`
	FilesMeta   []fileMetaRequest `json:"filesMeta" validate:"required,min=1,dive"`
	Grouping    *groupingRequest  `json:"grouping,omitempty"`
}

func (h *SubmissionHandler) CreateSubmission(c echo.Context) error {
	var req createSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	files := make([]usecase.FileMetaInput, 0, len(req.FilesMeta))
	for _, f := range req.FilesMeta {
		files = append(files, usecase.FileMetaInput{
			Name:        f.Name,
			Size:        f.Size,
			ContentType: f.ContentType,
		})
	}

	var grouping *usecase.GroupingInput
	if req.Grouping != nil {
		grouping = &usecase.GroupingInput{
			ContactName:  req.Grouping.ContactName,
			ContactEmail: req.Grouping.ContactEmail,
			MaxPerClass:  req.Grouping.MaxPerClass,
			MinSlots:     req.Grouping.MinSlots,
			MaxSlots:     req.Grouping.MaxSlots,
			Notes:        req.Grouping.Notes,
		}
	}

	submission, err := h.submissionUseCase.Create(c.Request().Context(), middleware.CurrentUser(c), usecase.CreateSubmissionInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		FilesMeta:   files,
		Grouping:    grouping,
	})
	if err != nil {
		return response.Error(c, err)
	}

	// The full document stays server-side; create returns only the handle
	// and the derived storage paths the client needs to start uploading.
	return response.OK(c, map[string]interface{}{
		"id":    submission.ID,
		"files": submission.Files,
	})
}

func (h *SubmissionHandler) GetSubmission(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Submission ID is required", nil))
	}

	submission, err := h.submissionUseCase.Get(c.Request().Context(), middleware.CurrentUser(c), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, submission)
}

func (h *SubmissionHandler) ListSubmissions(c echo.Context) error {
	submissions, err := h.submissionUseCase.List(c.Request().Context(), middleware.CurrentUser(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"submissions": submissions,
	})
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *SubmissionHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Submission ID is required", nil))
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.submissionUseCase.UpdateStatus(c.Request().Context(), middleware.CurrentUser(c), id, req.Status); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{"ok": true})
}

type appendMessageRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
	// By is accepted for wire compatibility; the author role always comes
	// from the verified token.
	By string `json:"by,omitempty"`
}

func (h *SubmissionHandler) AppendMessage(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Submission ID is required", nil))
	}

	var req appendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.submissionUseCase.AppendMessage(c.Request().Context(), middleware.CurrentUser(c), id, req.Text); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{"ok": true})
}

type appendResultRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	Size        int64  `json:"size" validate:"min=0"`
}

func (h *SubmissionHandler) AppendResult(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Submission ID is required", nil))
	}

	var req appendResultRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ticket, err := h.submissionUseCase.AppendResult(c.Request().Context(), middleware.CurrentUser(c), id, req.Filename, req.ContentType, req.Size)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, ticket)
}
