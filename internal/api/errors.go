package api

import (
	"errors"
	"net/http"

	"github.com/workshop-app/workshop-api/internal/api/shared"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/service"
)

// MapErrorToStatusCode maps service and domain errors to HTTP status codes.
// Unknown errors become 500 so internal failures are never misreported as
// client mistakes.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrInactiveUser),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrTaskNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing detail for err. Validation
// errors expose their field message; everything unexpected gets a generic
// message so internal details never leak.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return "Email already registered"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Incorrect email or password"
	case errors.Is(err, service.ErrUnauthenticated):
		return "Could not validate credentials"
	case errors.Is(err, service.ErrInactiveUser):
		return "Inactive user"
	case errors.Is(err, service.ErrTaskNotFound):
		return "Task not found or you don't have access to it"
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrInvalidID) {
		return "Validation error"
	}

	return "An unexpected error occurred"
}

// HandleAPIError writes the mapped status and safe message for err and logs
// the redacted details.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, opts ...shared.ResponseOption) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err, opts...)
}
