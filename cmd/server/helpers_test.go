package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/workshop-app/workshop-api/internal/config"
	"github.com/workshop-app/workshop-api/internal/platform/sqlite"
)

const testSecret = "test-secret-key-that-is-at-least-32-chars"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8001,
			LogLevel:               "error",
			FrontendURL:            "http://localhost:5173",
			ShutdownTimeoutSeconds: 5,
			LoginRatePerSecond:     100,
			LoginBurst:             100,
		},
		Database: config.DatabaseConfig{
			URL:          "sqlite://",
			AutoMigrate:  true,
			MaxOpenConns: 1,
		},
		Auth: config.AuthConfig{
			SecretKey:            testSecret,
			TokenLifetimeMinutes: 30,
			BcryptCost:           4,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestApp builds a fully wired application on a private in-memory
// SQLite database. The database is closed when the test ends.
func newTestApp(t *testing.T, mutate ...func(*config.Config)) *application {
	t.Helper()

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	logger := discardLogger()
	db, err := openSQLite(sqlite.MemoryDSN, logger)
	require.NoError(t, err)

	app, err := newApplication(context.Background(), cfg, logger, db)
	require.NoError(t, err)
	t.Cleanup(func() {
		app.loginLimiter.Stop()
		_ = db.Close()
	})
	return app
}

type apiClient struct {
	t      *testing.T
	router http.Handler
	token  string
	header http.Header
}

func newAPIClient(t *testing.T, app *application) *apiClient {
	return &apiClient{t: t, router: app.setupRouter()}
}

func (c *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for name, values := range c.header {
		req.Header[name] = values
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	return rec
}

// signUp registers email and stores the login token on the client.
func (c *apiClient) signUp(email, password string) {
	c.t.Helper()

	rec := c.do(http.MethodPost, "/api/v1/auth/register", map[string]string{"email": email, "password": password})
	require.Equal(c.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = c.do(http.MethodPost, "/api/v1/auth/login", map[string]string{"email": email, "password": password})
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decode(c.t, rec, &token)
	require.Equal(c.t, "bearer", token.TokenType)
	c.token = token.AccessToken
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Detail string `json:"detail"`
	}
	decode(t, rec, &body)
	return body.Detail
}
