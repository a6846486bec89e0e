package store

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found in cache")
	ErrSessionNotFound = errors.New("local session not found")
)
