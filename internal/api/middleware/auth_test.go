package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workshop-app/workshop-api/internal/api/shared"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/mocks"
	"github.com/workshop-app/workshop-api/internal/service"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New(), Email: "a@x.com", IsActive: true}
	inactive := &domain.User{ID: uuid.New(), Email: "b@x.com", IsActive: false}

	tests := []struct {
		name           string
		authHeader     string
		principal      *domain.User
		resolveErr     error
		expectedStatus int
		expectedDetail string
		expectedToken  string
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			expectedStatus: http.StatusOK,
			expectedToken:  "valid-token",
		},
		{
			name:           "scheme is case insensitive",
			authHeader:     "bearer valid-token",
			expectedStatus: http.StatusOK,
			expectedToken:  "valid-token",
		},
		{
			name:           "missing auth header",
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Not authenticated",
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic abc",
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Not authenticated",
		},
		{
			name:           "empty token",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Not authenticated",
		},
		{
			name:           "rejected token",
			authHeader:     "Bearer expired-token",
			resolveErr:     service.ErrUnauthenticated,
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Could not validate credentials",
		},
		{
			name:           "inactive principal is not rejected",
			authHeader:     "Bearer valid-token",
			principal:      inactive,
			expectedStatus: http.StatusOK,
			expectedToken:  "valid-token",
		},
		{
			name:           "inactive error from resolver is not a client error",
			authHeader:     "Bearer valid-token",
			resolveErr:     service.ErrInactiveUser,
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "An unexpected error occurred",
		},
		{
			name:           "store failure",
			authHeader:     "Bearer valid-token",
			resolveErr:     errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotToken string
			authService := &mocks.MockAuthService{
				ResolvePrincipalFn: func(ctx context.Context, token string) (*domain.User, error) {
					gotToken = token
					if tt.resolveErr != nil {
						return nil, tt.resolveErr
					}
					if tt.principal != nil {
						return tt.principal, nil
					}
					return user, nil
				},
			}

			var captured *domain.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured, _ = GetUser(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			NewAuthMiddleware(authService).Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				want := user
				if tt.principal != nil {
					want = tt.principal
				}
				assert.Same(t, want, captured)
				assert.Equal(t, tt.expectedToken, gotToken)
				return
			}

			assert.Nil(t, captured)
			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedDetail, body.Detail)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetUser(req)
	assert.False(t, ok)

	user := &domain.User{ID: uuid.New()}
	req = req.WithContext(shared.WithUser(req.Context(), user))
	got, ok := GetUser(req)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
}
