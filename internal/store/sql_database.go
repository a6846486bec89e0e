package store

import (
	"database/sql"

	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
