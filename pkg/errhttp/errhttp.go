// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	storedomain "github.com/ghuser/stockroom/services/store/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors; 5xx bodies
// carry the generic status text rather than the raw error string.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, true))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, storedomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, storedomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, storedomain.ErrUsernameTaken):
		return http.StatusConflict // 409
	case errors.Is(err, storedomain.ErrInvalidUsername), errors.Is(err, storedomain.ErrInvalidItem):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, storedomain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}
