package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the services. Callers check them with errors.Is;
// the API layer maps each one to a status code.
var (
	// ErrEmailTaken indicates registration with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong password
	// so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrInactiveUser indicates the account exists but has been deactivated.
	ErrInactiveUser = errors.New("inactive user")

	// ErrUnauthenticated indicates a bearer token could not be resolved to a user.
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrTaskNotFound indicates the task does not exist or belongs to another user.
	ErrTaskNotFound = errors.New("task not found")
)

// ServiceError wraps an unexpected failure with the operation that hit it.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
