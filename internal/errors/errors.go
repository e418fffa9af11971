package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotAuthenticated is returned when no session token is stored.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotAdmin is returned when the signed-in user is not an administrator.
	ErrNotAdmin = errors.New("admin role required")
	// ErrSessionNotFound is returned when a session cookie names an unknown session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrValidation is returned when a form fails client-side checks.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidAction is returned for an unknown workflow action or tab.
	ErrInvalidAction = errors.New("invalid action")
	// ErrUnauthorized is the class of upstream 401 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is the class of upstream 403 responses.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is the class of upstream 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrUpstreamValidation is the class of upstream 422 responses.
	ErrUpstreamValidation = errors.New("rejected by server")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// APIError is a non-2xx response from the library API.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api returned status %d", e.StatusCode)
}

// Unwrap exposes the status class so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnprocessableEntity:
		return ErrUpstreamValidation
	}
	return nil
}

// FieldErrors flattens server-side validation messages to one per field.
func (e *APIError) FieldErrors() map[string]string {
	if len(e.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Errors))
	for field, msgs := range e.Errors {
		out[field] = strings.Join(msgs, " ")
	}
	return out
}

// ValidationError carries per-field messages from client-side form checks.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain and upstream errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		he := NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "VALIDATION_FAILED")
		he.Fields = verr.Fields
		return he
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		he := mapAPIError(apiErr)
		he.Fields = apiErr.FieldErrors()
		return he
	}

	switch {
	case errors.Is(err, ErrNotAuthenticated), errors.Is(err, ErrSessionNotFound):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "NOT_AUTHENTICATED")
	case errors.Is(err, ErrNotAdmin):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_REQUIRED")
	case errors.Is(err, ErrInvalidAction):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ACTION")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

func mapAPIError(e *APIError) *HTTPError {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return NewHTTPError(http.StatusUnauthorized, e.Error(), "UPSTREAM_UNAUTHORIZED")
	case http.StatusForbidden:
		return NewHTTPError(http.StatusForbidden, e.Error(), "UPSTREAM_FORBIDDEN")
	case http.StatusNotFound:
		return NewHTTPError(http.StatusNotFound, e.Error(), "NOT_FOUND")
	case http.StatusUnprocessableEntity:
		return NewHTTPError(http.StatusUnprocessableEntity, e.Error(), "UPSTREAM_VALIDATION")
	default:
		if e.StatusCode >= 400 && e.StatusCode < 500 {
			return NewHTTPError(e.StatusCode, e.Error(), "UPSTREAM_REJECTED")
		}
		return NewHTTPError(http.StatusBadGateway, e.Error(), "UPSTREAM_ERROR")
	}
}
