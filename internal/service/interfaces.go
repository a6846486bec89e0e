package service

import (
	"context"
	"time"

	"github.com/mkhalitov/taskvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService defines the client-side contract for account registration and
// authentication. Implementations talk to the backend through the adapter,
// persist the resulting session in the local cache, and expose the
// passphrase under which the signed-in user's fields are encrypted.
type AuthService interface {
	// Register creates an account and signs in. The returned session is
	// persisted locally so the next start can restore it.
	Register(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Login authenticates an existing account and persists the session.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// RestoreSession loads the persisted session from the local cache and
	// re-arms the adapter with its bearer token. Returns
	// [store.ErrSessionNotFound] when no session is stored and
	// [ErrSessionExpired] when the stored token is past its expiry.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout drops the in-memory and persisted session and clears the
	// adapter token.
	Logout(ctx context.Context) error

	// Session returns the current in-memory session, or false when no one
	// is signed in.
	Session() (models.Session, bool)

	// Passphrase returns the key material for field encryption: the
	// signed-in user's email address. Empty when no one is signed in.
	Passphrase() string
}

// TaskService owns the task lifecycle: plaintext in, ciphertext out to the
// backend and the local cache, and per-record decryption on the way back. A
// record whose ciphertext cannot be decrypted is returned with a failure
// flag instead of aborting the whole listing.
type TaskService interface {
	// CreateTask validates the draft, encrypts the description, stores the
	// task on the backend and mirrors it into the cache.
	CreateTask(ctx context.Context, draft models.TaskDraft) (models.TaskItem, error)

	// GetTask returns one cached task with its decrypted checklist. When
	// the description fails to decrypt the checklist is left empty.
	GetTask(ctx context.Context, taskID string) (models.TaskItem, error)

	// ListTasks returns tasks narrowed by filter, newest first. It reads
	// from the backend and refreshes the cache; when the backend is
	// unreachable it serves the cached copy instead.
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.TaskItem, error)

	// UpdateTask re-encrypts and stores the edited draft over the task.
	UpdateTask(ctx context.Context, taskID string, draft models.TaskDraft) (models.TaskItem, error)

	// ToggleTask flips the task between pending and completed.
	ToggleTask(ctx context.Context, taskID string) (models.TaskItem, error)

	// DeleteTask removes the task everywhere; checklist entries cascade.
	DeleteTask(ctx context.Context, taskID string) error

	// AddEntry appends a checklist entry with an encrypted label.
	AddEntry(ctx context.Context, taskID, label string) (models.ChecklistItem, error)

	// ToggleEntry flips one entry's completed flag.
	ToggleEntry(ctx context.Context, taskID, entryID string) (models.ChecklistItem, error)

	// ReorderEntry moves an entry to position and renumbers its siblings.
	ReorderEntry(ctx context.Context, taskID, entryID string, position int) error

	// DeleteEntry removes a single checklist entry.
	DeleteEntry(ctx context.Context, taskID, entryID string) error

	// Refresh pulls the full task set and all checklists from the backend
	// into the local cache. Records stay encrypted at rest.
	Refresh(ctx context.Context) error
}

// RefreshJob periodically refreshes the local cache in the background while
// the user works. Idle until Start is called.
type RefreshJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
