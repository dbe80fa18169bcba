package api

import (
	"net/http"

	"github.com/workshop-app/workshop-api/internal/api/shared"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/service"
)

// SessionLogHandler serves the Pomodoro session log endpoints.
type SessionLogHandler struct {
	sessionLogService service.SessionLogService
}

// NewSessionLogHandler creates a new SessionLogHandler.
func NewSessionLogHandler(sessionLogService service.SessionLogService) *SessionLogHandler {
	return &SessionLogHandler{sessionLogService: sessionLogService}
}

// LogSession handles POST /api/v1/log/session.
func (h *SessionLogHandler) LogSession(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req SessionLogRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.sessionLogService.LogSession(
		r.Context(),
		user.ID,
		*req.MinutesSpent,
		domain.SessionType(req.SessionType),
	)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, sessionLogToResponse(entry))
}

// ListSessions handles GET /api/v1/log/session.
func (h *SessionLogHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	logs, err := h.sessionLogService.ListSessions(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionLogsToResponse(logs))
}
