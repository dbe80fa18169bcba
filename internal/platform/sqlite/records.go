package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/store"
)

// Row types mirror the migration schema. UUIDs are stored as text.

type userRecord struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Email          string    `gorm:"column:email"`
	HashedPassword string    `gorm:"column:hashed_password"`
	IsActive       bool      `gorm:"column:is_active"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (userRecord) TableName() string { return "users" }

func newUserRecord(u *domain.User) userRecord {
	return userRecord{
		ID:             u.ID.String(),
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt.UTC(),
	}
}

func (r userRecord) toDomain() (*domain.User, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, store.NewStoreError("user", "decode", fmt.Sprintf("corrupt id %q", r.ID), err)
	}
	return &domain.User{
		ID:             id,
		Email:          r.Email,
		HashedPassword: r.HashedPassword,
		IsActive:       r.IsActive,
		CreatedAt:      r.CreatedAt.UTC(),
	}, nil
}

type taskRecord struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string     `gorm:"column:title"`
	Description *string    `gorm:"column:description"`
	Completed   bool       `gorm:"column:completed"`
	Priority    string     `gorm:"column:priority"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	DueDate     *time.Time `gorm:"column:due_date"`
	OwnerID     string     `gorm:"column:owner_id"`
}

func (taskRecord) TableName() string { return "tasks" }

func newTaskRecord(t *domain.Task) taskRecord {
	return taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt.UTC(),
		DueDate:     utcPtr(t.DueDate),
		OwnerID:     t.OwnerID.String(),
	}
}

func (r taskRecord) toDomain() (*domain.Task, error) {
	ownerID, err := uuid.Parse(r.OwnerID)
	if err != nil {
		return nil, store.NewStoreError("task", "decode", fmt.Sprintf("corrupt owner id %q on task %d", r.OwnerID, r.ID), err)
	}
	return &domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		Priority:    r.Priority,
		CreatedAt:   r.CreatedAt.UTC(),
		DueDate:     utcPtr(r.DueDate),
		OwnerID:     ownerID,
	}, nil
}

type sessionLogRecord struct {
	ID             string    `gorm:"column:id;primaryKey"`
	MinutesSpent   int       `gorm:"column:minutes_spent"`
	SessionType    string    `gorm:"column:session_type"`
	CompletionTime time.Time `gorm:"column:completion_time"`
	UserID         string    `gorm:"column:user_id"`
}

func (sessionLogRecord) TableName() string { return "session_logs" }

func newSessionLogRecord(l *domain.SessionLog) sessionLogRecord {
	return sessionLogRecord{
		ID:             l.ID.String(),
		MinutesSpent:   l.MinutesSpent,
		SessionType:    string(l.SessionType),
		CompletionTime: l.CompletionTime.UTC(),
		UserID:         l.UserID.String(),
	}
}

func (r sessionLogRecord) toDomain() (*domain.SessionLog, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, store.NewStoreError("session_log", "decode", fmt.Sprintf("corrupt id %q", r.ID), err)
	}
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, store.NewStoreError("session_log", "decode", fmt.Sprintf("corrupt user id %q", r.UserID), err)
	}
	return &domain.SessionLog{
		ID:             id,
		MinutesSpent:   r.MinutesSpent,
		SessionType:    domain.SessionType(r.SessionType),
		CompletionTime: r.CompletionTime.UTC(),
		UserID:         userID,
	}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
