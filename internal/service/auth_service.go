package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/redact"
	"github.com/workshop-app/workshop-api/internal/service/auth"
	"github.com/workshop-app/workshop-api/internal/store"
)

// BearerTokenType is the token_type reported alongside issued access tokens.
const BearerTokenType = "bearer"

// AccessToken is the result of a successful login.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService registers users, checks credentials and resolves bearer tokens.
type AuthService interface {
	// Register creates an active user. Returns ErrEmailTaken when the email
	// is already registered, or a *domain.ValidationError for bad input.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Authenticate verifies credentials and issues an access token.
	Authenticate(ctx context.Context, email, password string) (*AccessToken, error)

	// ResolvePrincipal returns the user a token was issued to. The account's
	// active flag is only enforced at login.
	ResolvePrincipal(ctx context.Context, token string) (*domain.User, error)
}

type authServiceImpl struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.JWTService
	logger *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.JWTService,
	logger *slog.Logger,
) AuthService {
	return &authServiceImpl{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("component", "auth_service"),
	}
}

func (s *authServiceImpl) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		s.logger.Debug("registration rejected: email exists",
			"email", redact.Email(email))
		return nil, ErrEmailTaken
	case !errors.Is(err, store.ErrUserNotFound):
		s.logger.Error("failed to check existing email",
			"error", redact.Error(err))
		return nil, NewServiceError("register", "failed to check existing email", err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, NewServiceError("register", "failed to hash password", err)
	}

	user, err := domain.NewUser(email, digest)
	if err != nil {
		return nil, err
	}

	// The unique index catches a concurrent registration that passed the check above.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("registration lost race on email",
				"email", redact.Email(email))
			return nil, ErrEmailTaken
		}
		s.logger.Error("failed to save user",
			"error", redact.Error(err))
		return nil, NewServiceError("register", "failed to save user", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID)
	return user, nil
}

func (s *authServiceImpl) Authenticate(ctx context.Context, email, password string) (*AccessToken, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login failed: unknown email",
				"email", redact.Email(email))
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login",
			"error", redact.Error(err))
		return nil, NewServiceError("authenticate", "failed to look up user", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login failed: password mismatch",
			"user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	token, err := s.tokens.GenerateToken(ctx, user.Email)
	if err != nil {
		return nil, NewServiceError("authenticate", "failed to issue token", err)
	}

	s.logger.Debug("user logged in",
		"user_id", user.ID)
	return &AccessToken{AccessToken: token, TokenType: BearerTokenType}, nil
}

func (s *authServiceImpl) ResolvePrincipal(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.ValidateToken(ctx, token)
	if err != nil {
		s.logger.Debug("token rejected",
			"error", err)
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("token subject does not resolve to a user")
			return nil, ErrUnauthenticated
		}
		s.logger.Error("failed to load token subject",
			"error", redact.Error(err))
		return nil, NewServiceError("resolve_principal", "failed to load user", err)
	}
	return user, nil
}
