package response

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "gyomutime/pkg/errors"
	"gyomutime/pkg/logger"
)

// ErrorInfo is the uniform error envelope carried by every non-2xx response.
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type errorBody struct {
	Error ErrorInfo `json:"error"`
}

func JSON(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, data)
}

func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return writeError(c, apperrors.BadRequest(validationMessage(validationErr), err))
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == "internal" {
			logger.Error("%s: %s: %v", appErr.Code, appErr.Message, appErr.Err)
			// Internal detail stays server-side. Other 5xx codes such as
			// not_configured are part of the contract and pass through.
			return writeError(c, apperrors.Internal("An unexpected error occurred", nil))
		}
		return writeError(c, appErr)
	}

	logger.Error("unhandled error: %v", err)
	return writeError(c, apperrors.Internal("An unexpected error occurred", nil))
}

func writeError(c echo.Context, appErr *apperrors.AppError) error {
	return c.JSON(appErr.Status, errorBody{
		Error: ErrorInfo{
			Code:      appErr.Code,
			Message:   appErr.Message,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// validationMessage aggregates every field failure into one message so the
// client sees all violations at once.
func validationMessage(errs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "min":
			msgs = append(msgs, field+" must be at least "+err.Param())
		case "max":
			msgs = append(msgs, field+" must be at most "+err.Param())
		case "oneof":
			msgs = append(msgs, field+" must be one of: "+err.Param())
		case "email":
			msgs = append(msgs, field+" must be a valid email address")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
