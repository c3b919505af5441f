package handler

import (
	"github.com/labstack/echo/v4"

	"gyomutime/internal/adapter/api/middleware"
	"gyomutime/internal/usecase"
	"gyomutime/pkg/errors"
	"gyomutime/pkg/response"
)

type AuthHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAuthHandler(adminUseCase *usecase.AdminUseCase) *AuthHandler {
	return &AuthHandler{
		adminUseCase: adminUseCase,
	}
}

// Me echoes the verified identity so clients can inspect their claims.
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)

	return response.OK(c, map[string]interface{}{
		"uid":           user.UID,
		"email":         user.Email,
		"emailVerified": user.EmailVerified,
		"role":          user.Role,
		"isAdmin":       user.IsAdmin(),
		"isSuperAdmin":  h.adminUseCase.IsSuperAdmin(user),
	})
}

func (h *AuthHandler) BootstrapAdmin(c echo.Context) error {
	if err := h.adminUseCase.BootstrapAdmin(c.Request().Context(), middleware.CurrentUser(c)); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{"ok": true})
}

type verifyAdminRequest struct {
	Code string `json:"code" validate:"required"`
}

func (h *AuthHandler) VerifyAdmin(c echo.Context) error {
	var req verifyAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.adminUseCase.VerifyAdmin(c.Request().Context(), middleware.CurrentUser(c), req.Code); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{"ok": true})
}

type setAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
	Make  *bool  `json:"make" validate:"required"`
}

func (h *AuthHandler) SetAdmin(c echo.Context) error {
	var req setAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.adminUseCase.SetAdmin(c.Request().Context(), middleware.CurrentUser(c), req.Email, *req.Make); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{"ok": true})
}

type setAdminCodeRequest struct {
	Code string `json:"code" validate:"required,min=4"`
}

func (h *AuthHandler) SetAdminCode(c echo.Context) error {
	var req setAdminCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.adminUseCase.SetAdminCode(c.Request().Context(), middleware.CurrentUser(c), req.Code); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, map[string]interface{}{"ok": true})
}
