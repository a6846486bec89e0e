package models

import "time"

// TaskStatus is the progress state of a task as stored by the backend.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// Valid reports whether s is one of the statuses the backend accepts.
func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggled returns the opposite status.
func (s TaskStatus) Toggled() TaskStatus {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// CipherText is an opaque encrypted text value. It is produced by the field
// codec before a record leaves the client and is stored by the backend in a
// single text column. The backend and the local cache never see the plaintext.
type CipherText string

// Task is the primary record kind. Title, Link, Status and IsToday are stored
// in plain form; Description is encrypted client-side.
type Task struct {
	// ID is the record identifier. Assigned client-side (UUID) so the record
	// can be cached before the backend acknowledges it.
	ID string `json:"id"`

	// Title is the human-readable task name. Stored in plain form so the
	// backend can sort and the list screen can render without decrypting.
	Title string `json:"title"`

	// Link is an optional URL pointing at an external ticket.
	Link *string `json:"link,omitempty"`

	// Status is the progress state, one of pending or completed.
	Status TaskStatus `json:"status"`

	// IsToday marks the task as planned for today.
	IsToday bool `json:"is_today"`

	// Description holds the encrypted free-text description. Opaque to the
	// backend and to the local cache.
	Description CipherText `json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChecklistEntry is a dependent record owned by a task. Deleting the task
// cascades to its entries on the backend. Label is encrypted client-side.
type ChecklistEntry struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	Position  int    `json:"position"`
	Completed bool   `json:"completed"`

	// Label holds the encrypted step text.
	Label CipherText `json:"label"`
}

// TaskDraft carries the user-editable plaintext fields of a task. The task
// service encrypts Description before anything leaves the process.
type TaskDraft struct {
	Title       string
	Link        *string
	IsToday     bool
	Description string
}

// TaskFilter narrows a task listing. Nil/zero fields mean "no constraint".
type TaskFilter struct {
	Status      *TaskStatus
	TodayOnly   bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
