package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mkhalitov/taskvault/internal/adapter"
	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/internal/store"
	"github.com/mkhalitov/taskvault/internal/utils"
	"github.com/mkhalitov/taskvault/models"
)

type authService struct {
	adapter  adapter.BackendAdapter
	sessions store.SessionRepository
	logger   *logger.Logger

	mu       sync.RWMutex
	session  models.Session
	signedIn bool
}

func NewAuthService(backend adapter.BackendAdapter, sessions store.SessionRepository, log *logger.Logger) AuthService {
	return &authService{
		adapter:  backend,
		sessions: sessions,
		logger:   log,
	}
}

func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return models.Session{}, ErrInvalidCredentials
	}

	session, err := a.adapter.Register(ctx, creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrRegisterOnBackend, err)
	}

	a.storeSession(ctx, session)

	return session, nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return models.Session{}, ErrInvalidCredentials
	}

	session, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrLoginOnBackend, err)
	}

	a.storeSession(ctx, session)

	return session, nil
}

func (a *authService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.GetSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if session.Expired(time.Now()) {
		// The token is useless; drop it so the next start goes straight to
		// the login screen.
		if delErr := a.sessions.DeleteSession(ctx); delErr != nil {
			a.logger.Err(delErr).
				Str("func", "authService.RestoreSession").
				Msg("failed to drop expired session")
		}
		return models.Session{}, ErrSessionExpired
	}

	// The stored email doubles as the encryption passphrase, so a session
	// row whose email disagrees with its own token would silently decrypt
	// with the wrong key. Force a fresh sign-in instead.
	if email, emailErr := utils.TokenEmail(session.AccessToken); emailErr == nil && email != session.Email {
		if delErr := a.sessions.DeleteSession(ctx); delErr != nil {
			a.logger.Err(delErr).
				Str("func", "authService.RestoreSession").
				Msg("failed to drop mismatched session")
		}
		return models.Session{}, ErrSessionInvalid
	}

	a.adapter.SetToken(session.AccessToken)

	a.mu.Lock()
	a.session = session
	a.signedIn = true
	a.mu.Unlock()

	a.logger.Debug().
		Str("func", "authService.RestoreSession").
		Str("email", session.Email).
		Msg("session restored from local cache")

	return session, nil
}

func (a *authService) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.session = models.Session{}
	a.signedIn = false
	a.mu.Unlock()

	a.adapter.SetToken("")

	if err := a.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to drop persisted session: %w", err)
	}

	return nil
}

func (a *authService) Session() (models.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session, a.signedIn
}

func (a *authService) Passphrase() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.signedIn {
		return ""
	}
	return a.session.Email
}

// storeSession records the session in memory and mirrors it into the local
// cache. A cache write failure is logged but does not fail the sign-in: the
// session is live, it just will not survive a restart.
func (a *authService) storeSession(ctx context.Context, session models.Session) {
	a.mu.Lock()
	a.session = session
	a.signedIn = true
	a.mu.Unlock()

	if err := a.sessions.SaveSession(ctx, session); err != nil {
		a.logger.Err(err).
			Str("func", "authService.storeSession").
			Str("email", session.Email).
			Msg("failed to persist session")
	}
}
