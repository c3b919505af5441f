package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gyomutime/pkg/errors"
)

func record(t *testing.T, fn func(echo.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, fn(c))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (code, message, timestamp string) {
	t.Helper()
	var body struct {
		Error ErrorInfo `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code, body.Error.Message, body.Error.Timestamp
}

func TestErrorEnvelope(t *testing.T) {
	rec := record(t, func(c echo.Context) error {
		return Error(c, apperrors.Forbidden("not owner", nil))
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	code, message, timestamp := decodeEnvelope(t, rec)
	assert.Equal(t, "forbidden", code)
	assert.Equal(t, "not owner", message)
	assert.NotEmpty(t, timestamp)
}

func TestErrorHidesInternalDetail(t *testing.T) {
	rec := record(t, func(c echo.Context) error {
		return Error(c, apperrors.Internal("firestore write failed: secret detail", fmt.Errorf("boom")))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	code, message, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "internal", code)
	assert.NotContains(t, message, "secret detail")
}

func TestErrorKeepsNotConfigured(t *testing.T) {
	rec := record(t, func(c echo.Context) error {
		return Error(c, apperrors.NotConfigured("optimizer not configured"))
	})
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	code, message, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "not_configured", code)
	assert.Equal(t, "optimizer not configured", message)
}

func TestErrorWrapsUnknownErrors(t *testing.T) {
	rec := record(t, func(c echo.Context) error {
		return Error(c, fmt.Errorf("plain error"))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	code, _, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "internal", code)
}

func TestErrorAggregatesValidationFailures(t *testing.T) {
	type payload struct {
		Title string `validate:"required"`
		Size  int    `validate:"min=1"`
	}
	err := validator.New().Struct(payload{})
	require.Error(t, err)

	rec := record(t, func(c echo.Context) error {
		return Error(c, err)
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	code, message, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "bad_request", code)
	assert.Contains(t, message, "title is required")
	assert.Contains(t, message, "size must be at least 1")
}
