package sqlite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/workshop-app/workshop-api/internal/store"
	"gorm.io/gorm"
)

// MapError maps a gorm/SQLite error to the store error taxonomy, keeping the
// original error in the chain.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: foreign key violation: %v", store.ErrInvalidEntity, err)
	}

	// Constraint failures the dialect does not translate.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: foreign key violation: %v", store.ErrInvalidEntity, err)
	case strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "NOT NULL constraint failed"):
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	return err
}
