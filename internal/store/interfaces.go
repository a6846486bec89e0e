package store

import (
	"context"

	"github.com/mkhalitov/taskvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TaskCacheRepository is the low-level cache of task records. Descriptions
// stay encrypted in the cache.
type TaskCacheRepository interface {
	// SaveTask inserts or replaces a single task.
	SaveTask(ctx context.Context, task models.Task) error

	// ReplaceTasks atomically makes the cached task set equal to the given
	// slice. Surviving tasks keep their cached checklist entries; tasks
	// that disappeared are removed and their entries cascade.
	ReplaceTasks(ctx context.Context, tasks []models.Task) error

	// GetTask returns the cached task with the given ID, or
	// [ErrTaskNotFound].
	GetTask(ctx context.Context, taskID string) (models.Task, error)

	// ListTasks returns cached tasks narrowed by filter, newest first.
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)

	// DeleteTask removes a task; the schema cascades to its checklist
	// entries.
	DeleteTask(ctx context.Context, taskID string) error
}

// ChecklistCacheRepository is the low-level cache of checklist entries.
// Labels stay encrypted in the cache.
type ChecklistCacheRepository interface {
	// SaveEntry inserts or replaces a single entry.
	SaveEntry(ctx context.Context, entry models.ChecklistEntry) error

	// ReplaceEntries swaps all cached entries of one task.
	ReplaceEntries(ctx context.Context, taskID string, entries []models.ChecklistEntry) error

	// ListEntries returns the cached entries of a task ordered by
	// position.
	ListEntries(ctx context.Context, taskID string) ([]models.ChecklistEntry, error)

	// DeleteEntry removes a single entry.
	DeleteEntry(ctx context.Context, entryID string) error
}

// SessionRepository persists the signed-in session so the client can
// restore it across restarts without asking for credentials again.
type SessionRepository interface {
	// SaveSession stores the session, replacing any previous one.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the stored session, or [ErrSessionNotFound].
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the stored session. Not an error if none
	// exists.
	DeleteSession(ctx context.Context) error
}
