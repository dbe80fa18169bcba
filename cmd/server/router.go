package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/workshop-app/workshop-api/internal/api"
	apiMiddleware "github.com/workshop-app/workshop-api/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if app.config.Server.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(app.httpMetrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{app.config.Server.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", apiMiddleware.TraceIDHeader},
		ExposedHeaders:   []string{apiMiddleware.TraceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := api.NewAuthHandler(app.authService)
	taskHandler := api.NewTaskHandler(app.taskService)
	sessionLogHandler := api.NewSessionLogHandler(app.sessionLogService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.authService)

	r.Get("/", api.Root)
	r.Get("/api/message", api.Message)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		// Login attempts are rate limited per client IP.
		r.With(app.loginLimiter.Middleware).Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/me", authHandler.Me)

			for _, prefix := range []string{"/tasks", "/tasks/"} {
				r.Post(prefix, taskHandler.CreateTask)
				r.Get(prefix, taskHandler.ListTasks)
			}
			r.Get("/tasks/{id}", taskHandler.GetTask)
			r.Put("/tasks/{id}", taskHandler.UpdateTask)
			r.Delete("/tasks/{id}", taskHandler.DeleteTask)

			r.Post("/log/session", sessionLogHandler.LogSession)
			r.Get("/log/session", sessionLogHandler.ListSessions)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}
