package sqlite

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workshop-app/workshop-api/internal/store"
)

func TestRecordsRejectCorruptIDs(t *testing.T) {
	t.Parallel()

	valid := uuid.NewString()

	tests := []struct {
		name           string
		decode         func() error
		expectedEntity string
	}{
		{
			name: "user id",
			decode: func() error {
				_, err := userRecord{ID: "not-a-uuid", Email: "a@x.com"}.toDomain()
				return err
			},
			expectedEntity: "user",
		},
		{
			name: "task owner id",
			decode: func() error {
				_, err := taskRecord{ID: 3, Title: "t", OwnerID: "???"}.toDomain()
				return err
			},
			expectedEntity: "task",
		},
		{
			name: "session log id",
			decode: func() error {
				_, err := sessionLogRecord{ID: "", UserID: valid}.toDomain()
				return err
			},
			expectedEntity: "session_log",
		},
		{
			name: "session log user id",
			decode: func() error {
				_, err := sessionLogRecord{ID: valid, UserID: "x"}.toDomain()
				return err
			},
			expectedEntity: "session_log",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.decode()
			require.Error(t, err)

			var storeErr *store.StoreError
			require.True(t, errors.As(err, &storeErr))
			assert.Equal(t, tt.expectedEntity, storeErr.Entity)
			assert.Equal(t, "decode", storeErr.Operation)
			assert.NotNil(t, storeErr.Err)
			assert.False(t, store.IsNotFoundError(err))
		})
	}
}
