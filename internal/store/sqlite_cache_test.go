package store

import (
	"context"
	"errors"
	"testing"

	"github.com/mkhalitov/taskvault/internal/config"
	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/models"
)

// These tests run against a real in-memory sqlite database so they exercise
// the actual conflict resolution and foreign key cascade behaviour that
// sqlmock-based tests cannot observe.

func newSQLiteCache(t *testing.T, dsn string) *CacheStorages {
	t.Helper()

	cache, err := NewCacheStorages(context.Background(), config.ClientCache{DSN: dsn}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to open sqlite cache: %v", err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestSQLiteCache_ResavingTaskKeepsChecklistEntries(t *testing.T) {
	cache := newSQLiteCache(t, ":memory:")
	ctx := context.Background()

	task := models.Task{ID: "task-1", Title: "Deploy", Status: models.StatusPending}
	if err := cache.Tasks.SaveTask(ctx, task); err != nil {
		t.Fatalf("failed to save task: %v", err)
	}
	entry := models.ChecklistEntry{ID: "entry-1", TaskID: "task-1", Position: 1, Label: "cipher"}
	if err := cache.Checklist.SaveEntry(ctx, entry); err != nil {
		t.Fatalf("failed to save entry: %v", err)
	}

	task.Title = "Deploy v2"
	if err := cache.Tasks.SaveTask(ctx, task); err != nil {
		t.Fatalf("failed to re-save task: %v", err)
	}

	entries, err := cache.Checklist.ListEntries(ctx, "task-1")
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries after task re-save, want 1", len(entries))
	}

	got, err := cache.Tasks.GetTask(ctx, "task-1")
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if got.Title != "Deploy v2" {
		t.Errorf("got title %q, want %q", got.Title, "Deploy v2")
	}
}

func TestSQLiteCache_ReplaceTasksKeepsSurvivorEntries(t *testing.T) {
	cache := newSQLiteCache(t, ":memory:")
	ctx := context.Background()

	keep := models.Task{ID: "task-keep", Title: "Keep", Status: models.StatusPending}
	drop := models.Task{ID: "task-drop", Title: "Drop", Status: models.StatusPending}
	for _, task := range []models.Task{keep, drop} {
		if err := cache.Tasks.SaveTask(ctx, task); err != nil {
			t.Fatalf("failed to save task %s: %v", task.ID, err)
		}
	}
	if err := cache.Checklist.SaveEntry(ctx, models.ChecklistEntry{ID: "entry-keep", TaskID: "task-keep", Position: 1, Label: "cipher"}); err != nil {
		t.Fatalf("failed to save entry: %v", err)
	}
	if err := cache.Checklist.SaveEntry(ctx, models.ChecklistEntry{ID: "entry-drop", TaskID: "task-drop", Position: 1, Label: "cipher"}); err != nil {
		t.Fatalf("failed to save entry: %v", err)
	}

	keep.Title = "Keep renamed"
	if err := cache.Tasks.ReplaceTasks(ctx, []models.Task{keep}); err != nil {
		t.Fatalf("failed to replace tasks: %v", err)
	}

	entries, err := cache.Checklist.ListEntries(ctx, "task-keep")
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries for surviving task, want 1", len(entries))
	}

	if _, err = cache.Tasks.GetTask(ctx, "task-drop"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("got %v for pruned task, want ErrTaskNotFound", err)
	}
	gone, err := cache.Checklist.ListEntries(ctx, "task-drop")
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(gone) != 0 {
		t.Errorf("got %d entries for pruned task, want 0 via cascade", len(gone))
	}
}

func TestSQLiteCache_DSNWithQueryParams(t *testing.T) {
	cache := newSQLiteCache(t, "file::memory:?cache=shared")
	ctx := context.Background()

	if err := cache.Tasks.SaveTask(ctx, models.Task{ID: "task-1", Title: "Ping", Status: models.StatusPending}); err != nil {
		t.Fatalf("failed to save task: %v", err)
	}
	if _, err := cache.Tasks.GetTask(ctx, "task-1"); err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
}
