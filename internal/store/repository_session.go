package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/models"
)

const (
	// The session table holds at most one row.
	upsertSession = `INSERT INTO session (id, email, access_token, expires_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			email = excluded.email,
			access_token = excluded.access_token,
			expires_at = excluded.expires_at;`

	getSession = `SELECT email, access_token, expires_at FROM session WHERE id = 1;`

	deleteSession = `DELETE FROM session WHERE id = 1;`
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.DB.ExecContext(ctx, upsertSession, session.Email, session.AccessToken, session.ExpiresAt)
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("email", session.Email).
			Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session

	row := r.DB.QueryRowContext(ctx, getSession)
	if err := row.Scan(&session.Email, &session.AccessToken, &session.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		r.logger.Err(err).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to scan session row: %w", err)
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
