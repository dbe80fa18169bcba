// Package api contains the HTTP handlers for accounts, tasks and Pomodoro
// session logs. Handlers decode and validate requests, call the services,
// and map service errors to status codes and client-safe messages.
package api
