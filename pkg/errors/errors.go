package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

func BadRequest(message string, err error) *AppError {
	return New("bad_request", message, http.StatusBadRequest, err)
}

func NotFound(resource string, err error) *AppError {
	return New("not_found", fmt.Sprintf("%s not found", resource), http.StatusNotFound, err)
}

func Forbidden(message string, err error) *AppError {
	return New("forbidden", message, http.StatusForbidden, err)
}

func Unauthorized(message string, err error) *AppError {
	return New("unauthorized", message, http.StatusUnauthorized, err)
}

// Token verification failures carry distinct codes so clients can decide
// between a silent refresh-and-retry (expired) and a forced re-login.
func TokenExpired(err error) *AppError {
	return New("token_expired", "Authentication token has expired", http.StatusUnauthorized, err)
}

func TokenRevoked(err error) *AppError {
	return New("token_revoked", "Authentication token has been revoked", http.StatusUnauthorized, err)
}

func InvalidToken(err error) *AppError {
	return New("invalid_token", "Malformed authentication token", http.StatusUnauthorized, err)
}

func AuthenticationFailed(err error) *AppError {
	return New("authentication_failed", "Authentication failed", http.StatusUnauthorized, err)
}

func RateLimitExceeded(message string) *AppError {
	return New("rate_limit_exceeded", message, http.StatusTooManyRequests, nil)
}

func UnsupportedType(message string) *AppError {
	return New("unsupported_type", message, http.StatusBadRequest, nil)
}

func TooLarge(message string) *AppError {
	return New("too_large", message, http.StatusBadRequest, nil)
}

func Internal(message string, err error) *AppError {
	return New("internal", message, http.StatusInternalServerError, err)
}

func NotConfigured(message string) *AppError {
	return New("not_configured", message, http.StatusNotImplemented, nil)
}
