package registry

import (
	"errors"
	"net/http"
)

// Domain errors for registry operations.
var (
	ErrNotFound    = errors.New("token not found")
	ErrDuplicate   = errors.New("token already registered")
	ErrInvalidKind = errors.New("kind must be level or compartment")
	ErrEmptyToken  = errors.New("token must not be empty")
)

// MapHTTPStatus maps registry domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidKind), errors.Is(err, ErrEmptyToken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
