package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/workshop-app/workshop-api/internal/api/shared"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/service"
)

// AuthMiddleware resolves bearer tokens to users for protected routes.
type AuthMiddleware struct {
	authService service.AuthService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Authenticate rejects requests without a valid bearer token and stores the
// resolved user in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
			return
		}

		user, err := m.authService.ResolvePrincipal(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnauthenticated):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
					"Could not validate credentials", err)
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"An unexpected error occurred", err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUser(r.Context(), user)))
	})
}

// GetUser extracts the authenticated user from the request context.
func GetUser(r *http.Request) (*domain.User, bool) {
	return shared.UserFromContext(r.Context())
}

// bearerToken extracts the token from "Authorization: Bearer <token>". The
// scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
