package api

import (
	"errors"
	"net/http"

	"github.com/workshop-app/workshop-api/internal/api/shared"
	"github.com/workshop-app/workshop-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		var opts []shared.ResponseOption
		if errors.Is(err, service.ErrInvalidCredentials) {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
		HandleAPIError(w, r, err, opts...)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}

// Me handles GET /api/v1/users/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}
