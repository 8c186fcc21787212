package grants

import (
	"errors"
	"net/http"
)

// Domain errors for grant operations.
var (
	ErrNotFound       = errors.New("grant not found")
	ErrDuplicate      = errors.New("subject already has a grant")
	ErrEmptySubject   = errors.New("subject must not be empty")
	ErrInvalidMarking = errors.New("marking could not be parsed")
)

// MapHTTPStatus maps grant domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrEmptySubject), errors.Is(err, ErrInvalidMarking):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
