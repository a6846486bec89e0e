package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidBackendConfigs indicates invalid backend settings
	// (for example, a missing address).
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
	// ErrInvalidCacheConfigs indicates invalid local cache settings
	// (for example, an empty DSN).
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
)
