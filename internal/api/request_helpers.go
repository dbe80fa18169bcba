package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workshop-app/workshop-api/internal/api/middleware"
	"github.com/workshop-app/workshop-api/internal/api/shared"
	"github.com/workshop-app/workshop-api/internal/domain"
)

// requireUser returns the authenticated user placed in the context by the
// auth middleware. If it is missing the route was wired without the
// middleware; the request is answered with 401 and false is returned.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := middleware.GetUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return user, true
}

// getPathTaskID parses a positive integer task id from the URL path. Failures
// match both domain.ErrInvalidID and the field's *domain.ValidationError.
func getPathTaskID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, invalidID(paramName, "is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidID(paramName, "must be a positive integer")
	}
	return id, nil
}

func invalidID(field, message string) error {
	return fmt.Errorf("%w: %w", domain.ErrInvalidID, domain.NewValidationError(field, message))
}

// decodeAndValidate decodes the JSON body into req and runs its struct
// validation, answering 400 on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, shared.ValidationMessage(err), err)
		return false
	}
	return true
}
