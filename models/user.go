package models

import "time"

// Credentials carries the user's sign-in input. The email doubles as the
// encryption passphrase for all of the user's free-text fields, so it is
// threaded explicitly through every encrypt/decrypt call site rather than
// read from a global.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the authenticated state returned by the identity provider.
// The access token authorizes backend requests; the backend's row-level
// policies scope every record to the token's principal.
type Session struct {
	// Email is the authenticated user's address, used verbatim as the
	// field-codec passphrase.
	Email string `json:"email"`

	// AccessToken is the bearer token attached to every backend request.
	AccessToken string `json:"access_token"`

	// ExpiresAt is the token expiry read from the token's own claims.
	// The client never validates the signature; that is the backend's job.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session token has expired at the given moment.
// A zero ExpiresAt means the token carried no expiry claim and is treated as
// still valid.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
