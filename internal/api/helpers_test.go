package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/workshop-app/workshop-api/internal/api/middleware"
	"github.com/workshop-app/workshop-api/internal/api/shared"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/mocks"
)

const testToken = "test-token"

var testUser = &domain.User{
	ID:       uuid.MustParse("6f1c2a9e-3b1d-4c55-9a57-0d7f3b1e2a10"),
	Email:    "a@x.com",
	IsActive: true,
}

type testServices struct {
	auth  *mocks.MockAuthService
	tasks *mocks.MockTaskService
	logs  *mocks.MockSessionLogService
}

func newTestServices() *testServices {
	return &testServices{
		auth:  &mocks.MockAuthService{Principal: testUser},
		tasks: &mocks.MockTaskService{},
		logs:  &mocks.MockSessionLogService{},
	}
}

// router mirrors the production route table for the handlers under test.
func (s *testServices) router() http.Handler {
	authHandler := NewAuthHandler(s.auth)
	taskHandler := NewTaskHandler(s.tasks)
	logHandler := NewSessionLogHandler(s.logs)
	authMiddleware := middleware.NewAuthMiddleware(s.auth)

	r := chi.NewRouter()
	r.Get("/", Root)
	r.Get("/api/message", Message)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Get("/users/me", authHandler.Me)
			r.Post("/tasks/", taskHandler.CreateTask)
			r.Get("/tasks/", taskHandler.ListTasks)
			r.Get("/tasks/{id}", taskHandler.GetTask)
			r.Put("/tasks/{id}", taskHandler.UpdateTask)
			r.Delete("/tasks/{id}", taskHandler.DeleteTask)
			r.Post("/log/session", logHandler.LogSession)
			r.Get("/log/session", logHandler.ListSessions)
		})
	})
	return r
}

func (s *testServices) do(t *testing.T, method, path, body string, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func strPtr(s string) *string { return &s }
