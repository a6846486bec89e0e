package adapter

import "errors"

// Sentinel errors mapped from backend HTTP status codes. Wrapped errors
// carry the response body; check with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("record not found")
	ErrConflict            = errors.New("record conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("backend internal error")
)
