package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mkhalitov/taskvault/internal/adapter"
	"github.com/mkhalitov/taskvault/internal/codec"
	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/internal/store"
	"github.com/mkhalitov/taskvault/internal/utils"
	"github.com/mkhalitov/taskvault/models"
)

type taskService struct {
	adapter   adapter.BackendAdapter
	codec     codec.FieldCodec
	auth      AuthService
	tasks     store.TaskCacheRepository
	checklist store.ChecklistCacheRepository
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

func NewTaskService(
	backend adapter.BackendAdapter,
	fieldCodec codec.FieldCodec,
	auth AuthService,
	tasks store.TaskCacheRepository,
	checklist store.ChecklistCacheRepository,
	log *logger.Logger,
) TaskService {
	return &taskService{
		adapter:   backend,
		codec:     fieldCodec,
		auth:      auth,
		tasks:     tasks,
		checklist: checklist,
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
	}
}

func (s *taskService) CreateTask(ctx context.Context, draft models.TaskDraft) (models.TaskItem, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return models.TaskItem{}, ErrEmptyTaskTitle
	}

	passphrase := s.auth.Passphrase()
	if passphrase == "" {
		return models.TaskItem{}, ErrNotAuthenticated
	}

	description, err := s.encryptField(draft.Description, passphrase)
	if err != nil {
		return models.TaskItem{}, fmt.Errorf("encrypt description for create: %w", err)
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:          s.ids.Generate(),
		Title:       draft.Title,
		Link:        draft.Link,
		Status:      models.StatusPending,
		IsToday:     draft.IsToday,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.adapter.CreateTask(ctx, task)
	if err != nil {
		return models.TaskItem{}, fmt.Errorf("create task on backend: %w", err)
	}

	if err = s.tasks.SaveTask(ctx, created); err != nil {
		return models.TaskItem{}, fmt.Errorf("cache created task: %w", err)
	}

	return models.TaskItem{
		Task:        created,
		Description: models.FieldOK(draft.Description),
	}, nil
}

func (s *taskService) GetTask(ctx context.Context, taskID string) (models.TaskItem, error) {
	passphrase := s.auth.Passphrase()
	if passphrase == "" {
		return models.TaskItem{}, ErrNotAuthenticated
	}

	task, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		return models.TaskItem{}, fmt.Errorf("get cached task: %w", err)
	}

	item := s.decryptTask(task, passphrase)
	if item.Description.Failed {
		// An unreadable description means the record's key context is
		// wrong; its checklist labels would fail the same way, so they are
		// not attempted.
		return item, nil
	}

	entries, err := s.checklist.ListEntries(ctx, taskID)
	if err != nil {
		return models.TaskItem{}, fmt.Errorf("list cached entries: %w", err)
	}
	item.Checklist = s.decryptEntries(entries, passphrase)

	return item, nil
}

func (s *taskService) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.TaskItem, error) {
	passphrase := s.auth.Passphrase()
	if passphrase == "" {
		return nil, ErrNotAuthenticated
	}

	tasks, err := s.adapter.ListTasks(ctx, filter)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("func", "taskService.ListTasks").
			Msg("backend unreachable, serving cached tasks")

		tasks, err = s.tasks.ListTasks(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list cached tasks: %w", err)
		}
	} else if filter == (models.TaskFilter{}) {
		// Only an unfiltered listing is the complete set; replacing the
		// cache from a filtered one would drop everything outside it.
		if cacheErr := s.tasks.ReplaceTasks(ctx, tasks); cacheErr != nil {
			s.logger.Err(cacheErr).
				Str("func", "taskService.ListTasks").
				Msg("failed to refresh task cache")
		}
	}

	items := make([]models.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, s.decryptTask(task, passphrase))
	}

	return items, nil
}

func (s *taskService) UpdateTask(ctx context.Context, taskID string, draft models.TaskDraft) (models.TaskItem, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return models.TaskItem{}, ErrEmptyTaskTitle
	}

	passphrase := s.auth.Passphrase()
	if passphrase == "" {
		return models.TaskItem{}, ErrNotAuthenticated
	}

	task, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		return models.TaskItem{}, fmt.Errorf("load task for update: %w", err)
	}

	description, err := s.encryptField(draft.Description, passphrase)
	if err != nil {
		return models.TaskItem{}, fmt.Errorf("encrypt description for update: %w", err)
	}

	task.Title = draft.Title
	task.Link = draft.Link
	task.IsToday = draft.IsToday
	task.Description = description
	task.UpdatedAt = time.Now().UTC()

	updated, err := s.adapter.UpdateTask(ctx, task)
	if err != nil {
		return models.TaskItem{}, fmt.Errorf("update task on backend: %w", err)
	}

	if err = s.tasks.SaveTask(ctx, updated); err != nil {
		return models.TaskItem{}, fmt.Errorf("cache updated task: %w", err)
	}

	return models.TaskItem{
		Task:        updated,
		Description: models.FieldOK(draft.Description),
	}, nil
}

func (s *taskService) ToggleTask(ctx context.Context, taskID string) (models.TaskItem, error) {
	passphrase := s.auth.Passphrase()
	if passphrase == "" {
		return models.TaskItem{}, ErrNotAuthenticated
	}

	task, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		return models.TaskItem{}, fmt.Errorf("load task for toggle: %w", err)
	}

	task.Status = task.Status.Toggled()
	task.UpdatedAt = time.Now().UTC()

	updated, err := s.adapter.UpdateTask(ctx, task)
	if err != nil {
		return models.TaskItem{}, fmt.Errorf("toggle task on backend: %w", err)
	}

	if err = s.tasks.SaveTask(ctx, updated); err != nil {
		return models.TaskItem{}, fmt.Errorf("cache toggled task: %w", err)
	}

	return s.decryptTask(updated, passphrase), nil
}

func (s *taskService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.adapter.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("delete task on backend: %w", err)
	}

	// The sqlite schema cascades the entries, matching the backend.
	if err := s.tasks.DeleteTask(ctx, taskID); err != nil {
		return fmt.Errorf("delete cached task: %w", err)
	}

	return nil
}

func (s *taskService) AddEntry(ctx context.Context, taskID, label string) (models.ChecklistItem, error) {
	if strings.TrimSpace(label) == "" {
		return models.ChecklistItem{}, ErrEmptyEntryLabel
	}

	passphrase := s.auth.Passphrase()
	if passphrase == "" {
		return models.ChecklistItem{}, ErrNotAuthenticated
	}

	encrypted, err := s.codec.Encrypt(label, passphrase)
	if err != nil {
		return models.ChecklistItem{}, fmt.Errorf("encrypt entry label: %w", err)
	}

	existing, err := s.checklist.ListEntries(ctx, taskID)
	if err != nil {
		return models.ChecklistItem{}, fmt.Errorf("list entries for position: %w", err)
	}

	entry := models.ChecklistEntry{
		ID:       s.ids.Generate(),
		TaskID:   taskID,
		Position: len(existing),
		Label:    models.CipherText(encrypted),
	}

	created, err := s.adapter.CreateEntry(ctx, entry)
	if err != nil {
		return models.ChecklistItem{}, fmt.Errorf("create entry on backend: %w", err)
	}

	if err = s.checklist.SaveEntry(ctx, created); err != nil {
		return models.ChecklistItem{}, fmt.Errorf("cache created entry: %w", err)
	}

	return models.ChecklistItem{Entry: created, Label: models.FieldOK(label)}, nil
}

func (s *taskService) ToggleEntry(ctx context.Context, taskID, entryID string) (models.ChecklistItem, error) {
	passphrase := s.auth.Passphrase()
	if passphrase == "" {
		return models.ChecklistItem{}, ErrNotAuthenticated
	}

	entry, err := s.findEntry(ctx, taskID, entryID)
	if err != nil {
		return models.ChecklistItem{}, err
	}

	entry.Completed = !entry.Completed

	updated, err := s.adapter.UpdateEntry(ctx, entry)
	if err != nil {
		return models.ChecklistItem{}, fmt.Errorf("toggle entry on backend: %w", err)
	}

	if err = s.checklist.SaveEntry(ctx, updated); err != nil {
		return models.ChecklistItem{}, fmt.Errorf("cache toggled entry: %w", err)
	}

	return models.ChecklistItem{
		Entry: updated,
		Label: s.decryptField(updated.Label, passphrase, updated.ID),
	}, nil
}

func (s *taskService) ReorderEntry(ctx context.Context, taskID, entryID string, position int) error {
	entries, err := s.checklist.ListEntries(ctx, taskID)
	if err != nil {
		return fmt.Errorf("list entries for reorder: %w", err)
	}

	from := -1
	for i, entry := range entries {
		if entry.ID == entryID {
			from = i
			break
		}
	}
	if from == -1 {
		return ErrEntryNotFound
	}

	if position < 0 {
		position = 0
	}
	if position >= len(entries) {
		position = len(entries) - 1
	}
	if position == from {
		return nil
	}

	moved := entries[from]
	entries = append(entries[:from], entries[from+1:]...)
	entries = append(entries[:position], append([]models.ChecklistEntry{moved}, entries[position:]...)...)

	for i := range entries {
		if entries[i].Position == i {
			continue
		}
		entries[i].Position = i
		if _, err = s.adapter.UpdateEntry(ctx, entries[i]); err != nil {
			return fmt.Errorf("renumber entry on backend (id=%s): %w", entries[i].ID, err)
		}
	}

	if err = s.checklist.ReplaceEntries(ctx, taskID, entries); err != nil {
		return fmt.Errorf("cache reordered entries: %w", err)
	}

	return nil
}

func (s *taskService) DeleteEntry(ctx context.Context, taskID, entryID string) error {
	if err := s.adapter.DeleteEntry(ctx, entryID); err != nil {
		return fmt.Errorf("delete entry on backend: %w", err)
	}

	if err := s.checklist.DeleteEntry(ctx, entryID); err != nil {
		return fmt.Errorf("delete cached entry: %w", err)
	}

	return nil
}

func (s *taskService) Refresh(ctx context.Context) error {
	tasks, err := s.adapter.ListTasks(ctx, models.TaskFilter{})
	if err != nil {
		return fmt.Errorf("pull tasks from backend: %w", err)
	}

	if err = s.tasks.ReplaceTasks(ctx, tasks); err != nil {
		return fmt.Errorf("replace cached tasks: %w", err)
	}

	for _, task := range tasks {
		entries, err := s.adapter.ListEntries(ctx, task.ID)
		if err != nil {
			return fmt.Errorf("pull entries from backend (task_id=%s): %w", task.ID, err)
		}
		if err = s.checklist.ReplaceEntries(ctx, task.ID, entries); err != nil {
			return fmt.Errorf("replace cached entries (task_id=%s): %w", task.ID, err)
		}
	}

	s.logger.Debug().
		Str("func", "taskService.Refresh").
		Int("tasks", len(tasks)).
		Msg("local cache refreshed")

	return nil
}

// encryptField encrypts a single free-text field. The empty string is kept
// as an empty ciphertext: there is nothing to protect, and a present-but-
// empty marker lets the read path distinguish "no description" from a blob
// that failed to decrypt.
func (s *taskService) encryptField(text, passphrase string) (models.CipherText, error) {
	if text == "" {
		return "", nil
	}
	encrypted, err := s.codec.Encrypt(text, passphrase)
	if err != nil {
		return "", err
	}
	return models.CipherText(encrypted), nil
}

// decryptField decrypts one field, converting failure into a per-record
// outcome instead of an error.
func (s *taskService) decryptField(ct models.CipherText, passphrase, recordID string) models.FieldResult {
	if ct == "" {
		return models.FieldOK("")
	}

	text, err := s.codec.Decrypt(string(ct), passphrase)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("record_id", recordID).
			Msg("field failed to decrypt, rendering placeholder")
		return models.FieldFailed()
	}

	return models.FieldOK(text)
}

func (s *taskService) decryptTask(task models.Task, passphrase string) models.TaskItem {
	return models.TaskItem{
		Task:        task,
		Description: s.decryptField(task.Description, passphrase, task.ID),
	}
}

func (s *taskService) decryptEntries(entries []models.ChecklistEntry, passphrase string) []models.ChecklistItem {
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })

	items := make([]models.ChecklistItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, models.ChecklistItem{
			Entry: entry,
			Label: s.decryptField(entry.Label, passphrase, entry.ID),
		})
	}
	return items
}

func (s *taskService) findEntry(ctx context.Context, taskID, entryID string) (models.ChecklistEntry, error) {
	entries, err := s.checklist.ListEntries(ctx, taskID)
	if err != nil {
		return models.ChecklistEntry{}, fmt.Errorf("list entries: %w", err)
	}
	for _, entry := range entries {
		if entry.ID == entryID {
			return entry, nil
		}
	}
	return models.ChecklistEntry{}, ErrEntryNotFound
}
