package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/service"
)

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		registerErr    error
		expectedStatus int
		expectedDetail string
		expectedEmail  string
		expectCall     bool
	}{
		{
			name:           "created",
			body:           `{"email":"a@x.com","password":"pw1"}`,
			expectedStatus: http.StatusCreated,
			expectCall:     true,
		},
		{
			name:           "email taken",
			body:           `{"email":"a@x.com","password":"pw1"}`,
			registerErr:    service.ErrEmailTaken,
			expectedStatus: http.StatusConflict,
			expectedDetail: "Email already registered",
			expectCall:     true,
		},
		{
			name:           "malformed json",
			body:           `{"email":`,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Invalid request format",
		},
		{
			name:           "missing email",
			body:           `{"password":"pw1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Invalid email: field required",
		},
		{
			name:           "bad email",
			body:           `{"email":"nope","password":"pw1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Invalid email: invalid email format",
		},
		{
			name:           "single label domain",
			body:           `{"email":"dev@localhost","password":"pw1"}`,
			expectedStatus: http.StatusCreated,
			expectedEmail:  "dev@localhost",
			expectCall:     true,
		},
		{
			name:           "whitespace in email",
			body:           `{"email":"a b@x.com","password":"pw1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Invalid email: invalid email format",
		},
		{
			name:           "password too long",
			body:           `{"email":"a@x.com","password":"` + strings.Repeat("p", 73) + `"}`,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Invalid password: too long",
		},
		{
			name:           "unexpected failure",
			body:           `{"email":"a@x.com","password":"pw1"}`,
			registerErr:    errors.New("disk full"),
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "An unexpected error occurred",
			expectCall:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svcs := newTestServices()
			called := false
			svcs.auth.RegisterFn = func(ctx context.Context, email, password string) (*domain.User, error) {
				called = true
				if tt.registerErr != nil {
					return nil, tt.registerErr
				}
				return &domain.User{ID: testUser.ID, Email: email, HashedPassword: "digest", IsActive: true}, nil
			}

			rec := svcs.do(t, http.MethodPost, "/api/v1/auth/register", tt.body, false)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectCall, called)
			if tt.expectedStatus == http.StatusCreated {
				email := tt.expectedEmail
				if email == "" {
					email = "a@x.com"
				}
				assert.JSONEq(t,
					`{"id":"`+testUser.ID.String()+`","email":"`+email+`","is_active":true}`,
					rec.Body.String())
				return
			}
			assert.Equal(t, tt.expectedDetail, decodeError(t, rec).Detail)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		body           string
		authErr        error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "success",
			body:           `{"email":"a@x.com","password":"pw1"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad credentials",
			body:           `{"email":"a@x.com","password":"nope"}`,
			authErr:        service.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Incorrect email or password",
		},
		{
			name:           "inactive",
			body:           `{"email":"a@x.com","password":"pw1"}`,
			authErr:        service.ErrInactiveUser,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Inactive user",
		},
		{
			name:           "missing password",
			body:           `{"email":"a@x.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Invalid password: field required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svcs := newTestServices()
			svcs.auth.AuthenticateFn = func(ctx context.Context, email, password string) (*service.AccessToken, error) {
				if tt.authErr != nil {
					return nil, tt.authErr
				}
				return &service.AccessToken{AccessToken: "jwt", TokenType: service.BearerTokenType}, nil
			}

			rec := svcs.do(t, http.MethodPost, "/api/v1/auth/login", tt.body, false)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				var body TokenResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "jwt", body.AccessToken)
				assert.Equal(t, "bearer", body.TokenType)
				return
			}
			assert.Equal(t, tt.expectedDetail, decodeError(t, rec).Detail)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	t.Parallel()

	svcs := newTestServices()

	rec := svcs.do(t, http.MethodGet, "/api/v1/users/me", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":"`+testUser.ID.String()+`","email":"a@x.com","is_active":true}`,
		rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "password")

	rec = svcs.do(t, http.MethodGet, "/api/v1/users/me", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authenticated", decodeError(t, rec).Detail)
}

func TestMetaEndpoints(t *testing.T) {
	t.Parallel()

	svcs := newTestServices()

	rec := svcs.do(t, http.MethodGet, "/", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Welcome to the WorkShop Backend API!"}`, rec.Body.String())

	rec = svcs.do(t, http.MethodGet, "/api/message", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"content":"Hello from the WorkShop Go backend!"}`, rec.Body.String())
}
