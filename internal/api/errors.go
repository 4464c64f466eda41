package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/contacts-api/internal/api/shared"
	"github.com/phrazzld/contacts-api/internal/domain"
)

// internalErrorMessage is the only message clients see for unclassified failures.
const internalErrorMessage = "Internal server error"

// MapErrorToStatusCode maps error kinds to HTTP status codes. Anything that
// is not a classified domain error is an internal server error.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInternal):
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message a client may see for err.
// Classified errors carry their own message; everything else is replaced
// so driver and infrastructure details never leak.
func GetSafeErrorMessage(err error) string {
	if err == nil || MapErrorToStatusCode(err) == http.StatusInternalServerError {
		return internalErrorMessage
	}
	if msg := domain.Message(err); msg != "" {
		return msg
	}
	return internalErrorMessage
}

// HandleAPIError writes the error response for err, logging the full error
// (redacted) alongside it.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
