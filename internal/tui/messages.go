package tui

import (
	"github.com/mkhalitov/taskvault/models"
)

// NavigateTo switches the root router to another page. An optional Payload
// is re-dispatched to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload any
}

// AuthResult is produced by the async login/register commands.
type AuthResult struct {
	Err     error
	Email   string
	Session models.Session
}

// RegisterResult is produced by the async registration command.
type RegisterResult struct {
	Err   error
	Email string
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Email string
}

type listLoadedMsg struct {
	items []models.TaskItem
	err   error
}

type detailLoadedMsg struct {
	item models.TaskItem
	err  error
}

type taskSavedMsg struct {
	item models.TaskItem
	err  error
}

type taskDeletedMsg struct {
	err error
}

type entryChangedMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}
