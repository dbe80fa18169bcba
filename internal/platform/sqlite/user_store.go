package sqlite

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/platform/logger"
	"github.com/workshop-app/workshop-api/internal/store"
	"gorm.io/gorm"
)

// UserStore implements store.UserStore on SQLite.
type UserStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a UserStore. If logger is nil, slog.Default() is used.
func NewUserStore(db *gorm.DB, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{db: db, logger: logger.With(slog.String("component", "user_store"))}
}

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		return err
	}

	rec := newUserRecord(user)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrDuplicate) {
			log.Debug("email already registered", slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return mapped
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getOne(ctx, "id = ?", id.String())
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, "email = ?", email)
}

func (s *UserStore) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	var rec userRecord
	err := s.db.WithContext(ctx).Where(where, arg).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get user",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return rec.toDomain()
}
