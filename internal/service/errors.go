package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("stored session is expired")
	ErrSessionInvalid     = errors.New("stored session does not match its token")

	ErrRegisterOnBackend = errors.New("registration on backend failed")
	ErrLoginOnBackend    = errors.New("login on backend failed")

	ErrEmptyTaskTitle  = errors.New("task title is required")
	ErrEmptyEntryLabel = errors.New("checklist entry label is required")

	ErrEntryNotFound = errors.New("checklist entry not found")
)
