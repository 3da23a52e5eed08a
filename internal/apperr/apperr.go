// Package apperr defines the error taxonomy shared by the storage and HTTP
// layers. Storage wraps these sentinels with fmt.Errorf("...: %w", ...); the
// handlers map them to a single status code per kind with errors.Is.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrNotFound covers absent resources and resources deliberately hidden
	// from the caller (unpublished posts, posts owned by someone else).
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is authenticated but not permitted.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthorized means the request carries no usable identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalid covers failed input validation.
	ErrInvalid = errors.New("invalid input")
)

// FieldErrors carries per-field validation messages, serialized as the
// "errors" object of a 400 response.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, msg := range f {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrInvalid) hold for any FieldErrors value.
func (f FieldErrors) Is(target error) bool {
	return target == ErrInvalid
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
