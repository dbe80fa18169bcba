package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestNewTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		task, err := NewTask(ownerID, "t1", nil, false, "", nil)
		require.NoError(t, err)

		assert.Equal(t, "t1", task.Title)
		assert.Equal(t, DefaultTaskPriority, task.Priority)
		assert.False(t, task.Completed)
		assert.Nil(t, task.Description)
		assert.Nil(t, task.DueDate)
		assert.Equal(t, ownerID, task.OwnerID)
		assert.Zero(t, task.ID)
		assert.False(t, task.CreatedAt.IsZero())
		assert.Equal(t, time.UTC, task.CreatedAt.Location())
	})

	t.Run("due date normalised to UTC", func(t *testing.T) {
		t.Parallel()

		loc := time.FixedZone("UTC+2", 2*60*60)
		due := time.Date(2026, 3, 1, 12, 0, 0, 0, loc)

		task, err := NewTask(ownerID, "t1", strPtr("desc"), true, "high", &due)
		require.NoError(t, err)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, time.UTC, task.DueDate.Location())
		assert.True(t, task.DueDate.Equal(due))
		assert.Equal(t, "high", task.Priority)
		assert.True(t, task.Completed)
	})

	t.Run("multibyte title counts characters", func(t *testing.T) {
		t.Parallel()

		titles := []string{
			strings.Repeat("任", 100),
			strings.Repeat("é", MaxTaskTitleLength),
			strings.Repeat("🍅", MaxTaskTitleLength),
		}
		for _, title := range titles {
			task, err := NewTask(ownerID, title, nil, false, "", nil)
			require.NoError(t, err)
			assert.Equal(t, title, task.Title)
		}
	})

	tests := []struct {
		name    string
		ownerID uuid.UUID
		title   string
	}{
		{"empty title", ownerID, ""},
		{"blank title", ownerID, "   "},
		{"title too long", ownerID, strings.Repeat("x", MaxTaskTitleLength+1)},
		{"multibyte title too long", ownerID, strings.Repeat("任", MaxTaskTitleLength+1)},
		{"missing owner", uuid.Nil, "t1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewTask(tt.ownerID, tt.title, nil, false, "", nil)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestTaskApplyPatch(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	base := func() *Task {
		return &Task{
			ID:          7,
			Title:       "write report",
			Description: strPtr("quarterly"),
			Completed:   false,
			Priority:    "high",
			CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			DueDate:     &due,
			OwnerID:     uuid.New(),
		}
	}

	t.Run("completed only leaves other fields untouched", func(t *testing.T) {
		t.Parallel()

		task := base()
		before := *task

		require.NoError(t, task.ApplyPatch(TaskPatch{Completed: boolPtr(true)}))

		assert.True(t, task.Completed)
		assert.Equal(t, before.ID, task.ID)
		assert.Equal(t, before.Title, task.Title)
		assert.Equal(t, before.Description, task.Description)
		assert.Equal(t, before.Priority, task.Priority)
		assert.Equal(t, before.DueDate, task.DueDate)
		assert.Equal(t, before.CreatedAt, task.CreatedAt)
		assert.Equal(t, before.OwnerID, task.OwnerID)
	})

	t.Run("explicit null clears nullable fields", func(t *testing.T) {
		t.Parallel()

		task := base()
		require.NoError(t, task.ApplyPatch(TaskPatch{
			Description: Nullable[string]{Set: true},
			DueDate:     Nullable[time.Time]{Set: true},
		}))

		assert.Nil(t, task.Description)
		assert.Nil(t, task.DueDate)
		assert.Equal(t, "write report", task.Title)
	})

	t.Run("sets new values", func(t *testing.T) {
		t.Parallel()

		newDue := due.Add(48 * time.Hour)
		task := base()
		require.NoError(t, task.ApplyPatch(TaskPatch{
			Title:       strPtr("renamed"),
			Description: NullableOf("updated"),
			Priority:    strPtr("low"),
			DueDate:     NullableOf(newDue),
		}))

		assert.Equal(t, "renamed", task.Title)
		assert.Equal(t, "updated", *task.Description)
		assert.Equal(t, "low", task.Priority)
		assert.True(t, task.DueDate.Equal(newDue))
	})

	t.Run("invalid patch leaves task unchanged", func(t *testing.T) {
		t.Parallel()

		task := base()
		before := *task

		err := task.ApplyPatch(TaskPatch{Title: strPtr(""), Completed: boolPtr(true)})
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, before, *task)
	})

	t.Run("empty priority rejected", func(t *testing.T) {
		t.Parallel()

		task := base()
		err := task.ApplyPatch(TaskPatch{Priority: strPtr("")})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestTaskPatchIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, TaskPatch{}.IsEmpty())
	assert.False(t, TaskPatch{Completed: boolPtr(false)}.IsEmpty())
	assert.False(t, TaskPatch{Description: Nullable[string]{Set: true}}.IsEmpty())
}
