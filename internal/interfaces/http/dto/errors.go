package dto

import (
	"net/http"
	"strings"
)

// General error codes used by the HTTP layer itself
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Validation codes all start with INVALID_; INVALID_STATE alone maps to 422
// since the request was well-formed but the operation is not allowed.
func GetHTTPStatus(code string) int {
	switch {
	case code == ErrCodeNotFound:
		return http.StatusNotFound
	case code == "INVALID_STATE":
		return http.StatusUnprocessableEntity
	case code == ErrCodeBadRequest:
		return http.StatusBadRequest
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
