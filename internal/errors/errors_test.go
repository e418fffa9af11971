package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Unwrap(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusUnprocessableEntity, ErrUpstreamValidation},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &APIError{StatusCode: tt.status})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Nil(t, (&APIError{StatusCode: http.StatusInternalServerError}).Unwrap())
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "Book not found", (&APIError{StatusCode: 404, Message: "Book not found"}).Error())
	assert.Equal(t, "api returned status 500", (&APIError{StatusCode: 500}).Error())
}

func TestAPIError_FieldErrors(t *testing.T) {
	e := &APIError{Errors: map[string][]string{"email": {"taken.", "invalid."}}}
	assert.Equal(t, map[string]string{"email": "taken. invalid."}, e.FieldErrors())
	assert.Nil(t, (&APIError{}).FieldErrors())
}

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", &ValidationError{Fields: map[string]string{"title": "Title is required"}}, http.StatusUnprocessableEntity, "VALIDATION_FAILED"},
		{"upstream 401", &APIError{StatusCode: 401}, http.StatusUnauthorized, "UPSTREAM_UNAUTHORIZED"},
		{"upstream 404", &APIError{StatusCode: 404}, http.StatusNotFound, "NOT_FOUND"},
		{"upstream 422", &APIError{StatusCode: 422}, http.StatusUnprocessableEntity, "UPSTREAM_VALIDATION"},
		{"upstream 409", &APIError{StatusCode: 409}, http.StatusConflict, "UPSTREAM_REJECTED"},
		{"upstream 500", &APIError{StatusCode: 500}, http.StatusBadGateway, "UPSTREAM_ERROR"},
		{"not authenticated", ErrNotAuthenticated, http.StatusUnauthorized, "NOT_AUTHENTICATED"},
		{"unknown session", ErrSessionNotFound, http.StatusUnauthorized, "NOT_AUTHENTICATED"},
		{"not admin", ErrNotAdmin, http.StatusForbidden, "ADMIN_REQUIRED"},
		{"invalid action", fmt.Errorf("%w: lost", ErrInvalidAction), http.StatusBadRequest, "INVALID_ACTION"},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestMapErrorToHTTP_CarriesFields(t *testing.T) {
	got := MapErrorToHTTP(&APIError{StatusCode: 422, Message: "Invalid", Errors: map[string][]string{"name": {"taken"}}})

	resp := got.ToErrorResponse()
	assert.Equal(t, "Invalid", resp.Error)
	assert.Equal(t, map[string]string{"name": "taken"}, resp.Fields)
}
