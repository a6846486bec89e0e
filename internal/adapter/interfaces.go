package adapter

import (
	"context"

	"github.com/mkhalitov/taskvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the managed
// task backend. Implementations are responsible for serialisation, bearer
// token management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Authorization is entirely the backend's concern: every request carries
// the session's bearer token and the backend's row-level policies restrict
// each record to its owning principal.
type BackendAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called immediately after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if none has been set.
	Token() string

	// Register creates an account with the identity provider. On success
	// the returned bearer token is stored via SetToken and a session is
	// returned.
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Login authenticates with the identity provider. On success the
	// returned bearer token is stored via SetToken and a session is
	// returned.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// CreateTask stores a new task. The Description field must already be
	// encrypted by the caller.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// ListTasks fetches the caller's tasks narrowed by filter. Descriptions
	// come back encrypted. Retried on transient transport failures.
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)

	// UpdateTask replaces the stored task identified by task.ID.
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)

	// DeleteTask removes the task; the backend cascades the delete to the
	// task's checklist entries.
	DeleteTask(ctx context.Context, taskID string) error

	// CreateEntry stores a new checklist entry under entry.TaskID. The
	// Label field must already be encrypted by the caller.
	CreateEntry(ctx context.Context, entry models.ChecklistEntry) (models.ChecklistEntry, error)

	// ListEntries fetches the checklist of a task ordered by position.
	// Labels come back encrypted. Retried on transient transport failures.
	ListEntries(ctx context.Context, taskID string) ([]models.ChecklistEntry, error)

	// UpdateEntry replaces the stored entry identified by entry.ID.
	UpdateEntry(ctx context.Context, entry models.ChecklistEntry) (models.ChecklistEntry, error)

	// DeleteEntry removes a single checklist entry.
	DeleteEntry(ctx context.Context, entryID string) error
}
