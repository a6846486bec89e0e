package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/models"
)

const (
	// ON CONFLICT DO UPDATE, never INSERT OR REPLACE: REPLACE resolves the
	// PK conflict as DELETE+INSERT, which fires the ON DELETE CASCADE on
	// checklist_entries and wipes the task's cached checklist.
	upsertTask = `INSERT INTO tasks (id, title, link, status, is_today, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title       = excluded.title,
			link        = excluded.link,
			status      = excluded.status,
			is_today    = excluded.is_today,
			description = excluded.description,
			created_at  = excluded.created_at,
			updated_at  = excluded.updated_at;`

	getSingleTask = `SELECT id, title, link, status, is_today, description, created_at, updated_at
		FROM tasks
		WHERE id = ?;`

	deleteSingleTask = `DELETE FROM tasks WHERE id = ?;`

	deleteAllTasks = `DELETE FROM tasks;`
)

type taskCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewTaskCacheRepository(db *DB, logger *logger.Logger) TaskCacheRepository {
	return &taskCacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *taskCacheRepository) SaveTask(ctx context.Context, task models.Task) error {
	if _, err := r.DB.ExecContext(ctx, upsertTask, taskArgs(task)...); err != nil {
		r.logger.Err(err).
			Str("func", "taskCacheRepository.SaveTask").
			Str("task_id", task.ID).
			Msg("failed to upsert task")
		return fmt.Errorf("failed to save task (id=%s): %w", task.ID, err)
	}

	return nil
}

func (r *taskCacheRepository) ReplaceTasks(ctx context.Context, tasks []models.Task) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin replace transaction: %w", err)
	}
	defer tx.Rollback()

	// Surviving tasks are updated in place so their cached checklist
	// entries stay intact; only tasks gone from the backend are pruned,
	// cascading their entries.
	for _, task := range tasks {
		if _, err = tx.ExecContext(ctx, upsertTask, taskArgs(task)...); err != nil {
			return fmt.Errorf("failed to cache task (id=%s): %w", task.ID, err)
		}
	}

	if len(tasks) == 0 {
		if _, err = tx.ExecContext(ctx, deleteAllTasks); err != nil {
			return fmt.Errorf("failed to clear cached tasks: %w", err)
		}
		return tx.Commit()
	}

	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}

	query, args, err := sq.Delete("tasks").Where(sq.NotEq{"id": ids}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build prune query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to prune cached tasks: %w", err)
	}

	return tx.Commit()
}

func (r *taskCacheRepository) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	row := r.DB.QueryRowContext(ctx, getSingleTask, taskID)

	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		r.logger.Err(err).
			Str("func", "taskCacheRepository.GetTask").
			Str("task_id", taskID).
			Msg("failed to scan task row")
		return models.Task{}, fmt.Errorf("failed to scan task row: %w", err)
	}

	return task, nil
}

func (r *taskCacheRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	// The filter is dynamic, so the query is built instead of hand-rolled.
	builder := sq.Select("id", "title", "link", "status", "is_today", "description", "created_at", "updated_at").
		From("tasks").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.TodayOnly {
		builder = builder.Where(sq.Eq{"is_today": true})
	}
	if filter.CreatedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *filter.CreatedTo})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "taskCacheRepository.ListTasks").
			Msg("failed to execute list query")
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading task rows: %w", err)
	}

	return tasks, nil
}

func (r *taskCacheRepository) DeleteTask(ctx context.Context, taskID string) error {
	if _, err := r.DB.ExecContext(ctx, deleteSingleTask, taskID); err != nil {
		r.logger.Err(err).
			Str("func", "taskCacheRepository.DeleteTask").
			Str("task_id", taskID).
			Msg("failed to delete task")
		return fmt.Errorf("failed to delete task (id=%s): %w", taskID, err)
	}

	return nil
}

func taskArgs(task models.Task) []any {
	var link sql.NullString
	if task.Link != nil {
		link = sql.NullString{String: *task.Link, Valid: true}
	}

	return []any{
		task.ID,
		task.Title,
		link,
		string(task.Status),
		task.IsToday,
		string(task.Description),
		task.CreatedAt,
		task.UpdatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var task models.Task
	var link sql.NullString
	var status, description string

	err := row.Scan(
		&task.ID,
		&task.Title,
		&link,
		&status,
		&task.IsToday,
		&description,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	if link.Valid {
		task.Link = &link.String
	}
	task.Status = models.TaskStatus(status)
	task.Description = models.CipherText(description)

	return task, nil
}
