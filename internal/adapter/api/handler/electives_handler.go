package handler

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/domain/entity"
	"gyomutime/internal/usecase"
	"gyomutime/pkg/errors"
	"gyomutime/pkg/response"
)

type ElectivesHandler struct {
	electivesUseCase *usecase.ElectivesUseCase
}

func NewElectivesHandler(electivesUseCase *usecase.ElectivesUseCase) *ElectivesHandler {
	return &ElectivesHandler{
		electivesUseCase: electivesUseCase,
	}
}

// GetConfig is public: the sectioning page reads it without signing in.
func (h *ElectivesHandler) GetConfig(c echo.Context) error {
	config, err := h.electivesUseCase.GetConfig(c.Request().Context(), c.QueryParam("termId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, config)
}

type saveConfigRequest struct {
	TermID   string                    `json:"termId" validate:"required,max=100"`
	Blocks   []entity.ElectivesBlock   `json:"blocks" validate:"required,min=1,max=20"`
	Subjects []entity.ElectivesSubject `json:"subjects" validate:"required,min=1"`
	Meta     map[string]interface{}    `json:"meta,omitempty"`
}

func (h *ElectivesHandler) SaveConfig(c echo.Context) error {
	var req saveConfigRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	config, err := h.electivesUseCase.SaveConfig(c.Request().Context(), usecase.SaveConfigInput{
		TermID:   req.TermID,
		Blocks:   req.Blocks,
		Subjects: req.Subjects,
		Meta:     req.Meta,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, config)
}

type electivesRequestBody struct {
	TermID      string                      `json:"termId,omitempty"`
	Contact     entity.Contact              `json:"contact" validate:"required"`
	Constraints entity.ElectivesConstraints `json:"constraints,omitempty"`
	Notes       string                      `json:"notes,omitempty" validate:"max=5000"`
	Source      *entity.RequestSource       `json:"source,omitempty"`
	Subjects    []entity.RequestSubject     `json:"subjects" validate:"required,min=1"`
	Teachers    *entity.TeacherConstraints  `json:"teachers,omitempty"`
}

// SubmitRequest is the public sectioning intake from the importer page.
func (h *ElectivesHandler) SubmitRequest(c echo.Context) error {
	var req electivesRequestBody
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.electivesUseCase.SubmitRequest(c.Request().Context(), usecase.SubmitRequestInput{
		TermID:      req.TermID,
		Contact:     req.Contact,
		Constraints: req.Constraints,
		Notes:       req.Notes,
		Source:      req.Source,
		Subjects:    req.Subjects,
		Teachers:    req.Teachers,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{
		"ok": true,
		"id": request.ID,
	})
}

type timetableRequestBody struct {
	SubmissionID   string                     `json:"submissionId" validate:"required"`
	WeekdayPeriods map[string]int             `json:"weekdayPeriods,omitempty"`
	Move           *entity.MoveConstraint     `json:"move,omitempty"`
	ExcludeRule    string                     `json:"excludeRule,omitempty" validate:"max=2000"`
	Teachers       *entity.TeacherConstraints `json:"teachers,omitempty"`
}

func (h *ElectivesHandler) SubmitTimetable(c echo.Context) error {
	var req timetableRequestBody
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.electivesUseCase.SubmitTimetable(c.Request().Context(), &entity.TimetableRequest{
		SubmissionID:   req.SubmissionID,
		WeekdayPeriods: req.WeekdayPeriods,
		Move:           req.Move,
		ExcludeRule:    req.ExcludeRule,
		Teachers:       req.Teachers,
	}); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{"ok": true})
}
