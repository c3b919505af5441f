package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"gyomutime/internal/usecase"
	"gyomutime/pkg/response"
)

type UserHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewUserHandler(adminUseCase *usecase.AdminUseCase) *UserHandler {
	return &UserHandler{
		adminUseCase: adminUseCase,
	}
}

// SearchUsers pages through the user directory. Admin only; without a
// query it returns one provider page, with a query it scans and filters.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	pageToken := c.QueryParam("pageToken")

	limit := 20
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	result, err := h.adminUseCase.SearchUsers(c.Request().Context(), query, pageToken, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, result)
}
