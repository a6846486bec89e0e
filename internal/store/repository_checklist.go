package store

import (
	"context"
	"fmt"

	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/models"
)

const (
	upsertEntry = `INSERT OR REPLACE INTO checklist_entries (id, task_id, position, completed, label)
		VALUES (?, ?, ?, ?, ?);`

	listEntriesByTask = `SELECT id, task_id, position, completed, label
		FROM checklist_entries
		WHERE task_id = ?
		ORDER BY position ASC;`

	deleteSingleEntry = `DELETE FROM checklist_entries WHERE id = ?;`

	deleteEntriesByTask = `DELETE FROM checklist_entries WHERE task_id = ?;`
)

type checklistCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewChecklistCacheRepository(db *DB, logger *logger.Logger) ChecklistCacheRepository {
	return &checklistCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *checklistCacheRepository) SaveEntry(ctx context.Context, entry models.ChecklistEntry) error {
	_, err := r.DB.ExecContext(ctx, upsertEntry,
		entry.ID, entry.TaskID, entry.Position, entry.Completed, string(entry.Label))
	if err != nil {
		r.logger.Err(err).
			Str("func", "checklistCacheRepository.SaveEntry").
			Str("entry_id", entry.ID).
			Msg("failed to upsert checklist entry")
		return fmt.Errorf("failed to save checklist entry (id=%s): %w", entry.ID, err)
	}

	return nil
}

func (r *checklistCacheRepository) ReplaceEntries(ctx context.Context, taskID string, entries []models.ChecklistEntry) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin replace transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteEntriesByTask, taskID); err != nil {
		return fmt.Errorf("failed to clear cached entries (task_id=%s): %w", taskID, err)
	}

	for _, entry := range entries {
		_, err = tx.ExecContext(ctx, upsertEntry,
			entry.ID, entry.TaskID, entry.Position, entry.Completed, string(entry.Label))
		if err != nil {
			return fmt.Errorf("failed to cache checklist entry (id=%s): %w", entry.ID, err)
		}
	}

	return tx.Commit()
}

func (r *checklistCacheRepository) ListEntries(ctx context.Context, taskID string) ([]models.ChecklistEntry, error) {
	rows, err := r.DB.QueryContext(ctx, listEntriesByTask, taskID)
	if err != nil {
		r.logger.Err(err).
			Str("func", "checklistCacheRepository.ListEntries").
			Str("task_id", taskID).
			Msg("failed to query checklist entries")
		return nil, fmt.Errorf("failed to query checklist entries: %w", err)
	}
	defer rows.Close()

	var entries []models.ChecklistEntry
	for rows.Next() {
		var entry models.ChecklistEntry
		var label string

		err = rows.Scan(&entry.ID, &entry.TaskID, &entry.Position, &entry.Completed, &label)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist row: %w", err)
		}
		entry.Label = models.CipherText(label)
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading checklist rows: %w", err)
	}

	return entries, nil
}

func (r *checklistCacheRepository) DeleteEntry(ctx context.Context, entryID string) error {
	if _, err := r.DB.ExecContext(ctx, deleteSingleEntry, entryID); err != nil {
		r.logger.Err(err).
			Str("func", "checklistCacheRepository.DeleteEntry").
			Str("entry_id", entryID).
			Msg("failed to delete checklist entry")
		return fmt.Errorf("failed to delete checklist entry (id=%s): %w", entryID, err)
	}

	return nil
}
