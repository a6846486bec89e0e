package store

import (
	"context"
	"fmt"

	"github.com/mkhalitov/taskvault/internal/config"
	"github.com/mkhalitov/taskvault/internal/logger"
)

// CacheStorages bundles the local cache repositories sharing one
// sqlite connection.
type CacheStorages struct {
	Tasks     TaskCacheRepository
	Checklist ChecklistCacheRepository
	Session   SessionRepository

	db *DB
}

func NewCacheStorages(ctx context.Context, cfg config.ClientCache, log *logger.Logger) (*CacheStorages, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect local cache: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate local cache: %w", err)
	}

	return &CacheStorages{
		Tasks:     NewTaskCacheRepository(db, log),
		Checklist: NewChecklistCacheRepository(db, log),
		Session:   NewSessionRepository(db, log),
		db:        db,
	}, nil
}

func (s *CacheStorages) Close() error {
	return s.db.Close()
}
