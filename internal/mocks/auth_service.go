package mocks

import (
	"context"

	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/service"
)

// MockAuthService implements service.AuthService for testing
type MockAuthService struct {
	RegisterFn         func(ctx context.Context, email, password string) (*domain.User, error)
	AuthenticateFn     func(ctx context.Context, email, password string) (*service.AccessToken, error)
	ResolvePrincipalFn func(ctx context.Context, token string) (*domain.User, error)

	// Principal is returned by ResolvePrincipal when no function is set.
	Principal    *domain.User
	DefaultError error
}

var _ service.AuthService = (*MockAuthService)(nil)

// Register implements the service.AuthService interface
func (m *MockAuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, email, password)
	}
	return nil, m.DefaultError
}

// Authenticate implements the service.AuthService interface
func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*service.AccessToken, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return nil, m.DefaultError
}

// ResolvePrincipal implements the service.AuthService interface
func (m *MockAuthService) ResolvePrincipal(ctx context.Context, token string) (*domain.User, error) {
	if m.ResolvePrincipalFn != nil {
		return m.ResolvePrincipalFn(ctx, token)
	}
	if m.Principal != nil {
		return m.Principal, nil
	}
	return nil, service.ErrUnauthenticated
}
