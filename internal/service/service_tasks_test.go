package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkhalitov/taskvault/internal/codec"
	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/internal/mock"
	"github.com/mkhalitov/taskvault/internal/utils"
	"github.com/mkhalitov/taskvault/models"
)

const testPassphrase = "dev@example.com"

func newTestTaskSvc(t *testing.T, ctrl *gomock.Controller) (
	*taskService,
	*mock.MockBackendAdapter,
	*mock.MockFieldCodec,
	*mock.MockTaskCacheRepository,
	*mock.MockChecklistCacheRepository,
) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockCodec := mock.NewMockFieldCodec(ctrl)
	mockTasks := mock.NewMockTaskCacheRepository(ctrl)
	mockChecklist := mock.NewMockChecklistCacheRepository(ctrl)

	// A signed-in auth service, without going through the adapter.
	auth := &authService{
		session:  models.Session{Email: testPassphrase, AccessToken: "token"},
		signedIn: true,
	}

	svc := &taskService{
		adapter:   mockAdapter,
		codec:     mockCodec,
		auth:      auth,
		tasks:     mockTasks,
		checklist: mockChecklist,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger.Nop(),
	}

	return svc, mockAdapter, mockCodec, mockTasks, mockChecklist
}

func signOut(svc *taskService) {
	svc.auth.(*authService).signedIn = false
	svc.auth.(*authService).session = models.Session{}
}

// ── CreateTask ──────────────────────────────────────────────────────────────

func TestTaskService_CreateTask_EncryptsBeforeUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, mockTasks, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	link := "https://tracker.local/TV-7"
	draft := models.TaskDraft{Title: "Rotate certs", Link: &link, IsToday: true, Description: "use the new CA"}

	mockCodec.EXPECT().Encrypt("use the new CA", testPassphrase).Return("ciphered", nil)
	mockAdapter.EXPECT().CreateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			// The plaintext must never reach the adapter.
			assert.Equal(t, models.CipherText("ciphered"), task.Description)
			assert.NotEmpty(t, task.ID)
			assert.Equal(t, models.StatusPending, task.Status)
			assert.True(t, task.IsToday)
			return task, nil
		})
	mockTasks.EXPECT().SaveTask(ctx, gomock.Any()).Return(nil)

	item, err := svc.CreateTask(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "Rotate certs", item.Task.Title)
	assert.False(t, item.Description.Failed)
	assert.Equal(t, "use the new CA", item.Description.Text)
}

func TestTaskService_CreateTask_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestTaskSvc(t, ctrl)

	_, err := svc.CreateTask(context.Background(), models.TaskDraft{Title: "   "})
	assert.ErrorIs(t, err, ErrEmptyTaskTitle)
}

func TestTaskService_CreateTask_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestTaskSvc(t, ctrl)
	signOut(svc)

	_, err := svc.CreateTask(context.Background(), models.TaskDraft{Title: "Rotate certs"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestTaskService_CreateTask_EmptyDescriptionSkipsCodec(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, mockTasks, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().CreateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Empty(t, task.Description)
			return task, nil
		})
	mockTasks.EXPECT().SaveTask(ctx, gomock.Any()).Return(nil)

	item, err := svc.CreateTask(ctx, models.TaskDraft{Title: "No description"})
	require.NoError(t, err)
	assert.Empty(t, item.Description.Text)
	assert.False(t, item.Description.Failed)
}

func TestTaskService_CreateTask_EncryptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCodec, _, _ := newTestTaskSvc(t, ctrl)

	mockCodec.EXPECT().Encrypt("text", testPassphrase).Return("", codec.ErrEncrypt)

	_, err := svc.CreateTask(context.Background(), models.TaskDraft{Title: "Rotate certs", Description: "text"})
	assert.ErrorIs(t, err, codec.ErrEncrypt)
}

// ── GetTask ─────────────────────────────────────────────────────────────────

func TestTaskService_GetTask_DecryptsDescriptionAndChecklist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCodec, mockTasks, mockChecklist := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	task := models.Task{ID: "task-1", Title: "Rotate certs", Description: models.CipherText("ct-desc")}
	entries := []models.ChecklistEntry{
		{ID: "entry-2", TaskID: "task-1", Position: 1, Label: models.CipherText("ct-b")},
		{ID: "entry-1", TaskID: "task-1", Position: 0, Completed: true, Label: models.CipherText("ct-a")},
	}

	mockTasks.EXPECT().GetTask(ctx, "task-1").Return(task, nil)
	mockCodec.EXPECT().Decrypt("ct-desc", testPassphrase).Return("plain description", nil)
	mockChecklist.EXPECT().ListEntries(ctx, "task-1").Return(entries, nil)
	mockCodec.EXPECT().Decrypt("ct-a", testPassphrase).Return("first step", nil)
	mockCodec.EXPECT().Decrypt("ct-b", testPassphrase).Return("second step", nil)

	item, err := svc.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "plain description", item.Description.Text)
	require.Len(t, item.Checklist, 2)
	assert.Equal(t, "first step", item.Checklist[0].Label.Text)
	assert.True(t, item.Checklist[0].Entry.Completed)
	assert.Equal(t, "second step", item.Checklist[1].Label.Text)
}

func TestTaskService_GetTask_FailedDescriptionSkipsChecklist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCodec, mockTasks, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	task := models.Task{ID: "task-1", Description: models.CipherText("garbage")}

	mockTasks.EXPECT().GetTask(ctx, "task-1").Return(task, nil)
	mockCodec.EXPECT().Decrypt("garbage", testPassphrase).Return("", codec.ErrDecrypt)
	// No ListEntries expectation: the checklist must not be touched.

	item, err := svc.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.True(t, item.Description.Failed)
	assert.Equal(t, models.DecryptFailedPlaceholder, item.Description.Display())
	assert.Empty(t, item.Checklist)
}

// ── ListTasks ───────────────────────────────────────────────────────────────

func TestTaskService_ListTasks_OneBadRecordDoesNotPoisonTheRest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, mockTasks, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	backendTasks := []models.Task{
		{ID: "task-1", Title: "Good", Description: models.CipherText("ct-1")},
		{ID: "task-2", Title: "Bad", Description: models.CipherText("ct-2")},
		{ID: "task-3", Title: "Also good", Description: models.CipherText("ct-3")},
	}

	mockAdapter.EXPECT().ListTasks(ctx, models.TaskFilter{}).Return(backendTasks, nil)
	mockTasks.EXPECT().ReplaceTasks(ctx, backendTasks).Return(nil)
	mockCodec.EXPECT().Decrypt("ct-1", testPassphrase).Return("one", nil)
	mockCodec.EXPECT().Decrypt("ct-2", testPassphrase).Return("", codec.ErrDecrypt)
	mockCodec.EXPECT().Decrypt("ct-3", testPassphrase).Return("three", nil)

	items, err := svc.ListTasks(ctx, models.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "one", items[0].Description.Display())
	assert.Equal(t, models.DecryptFailedPlaceholder, items[1].Description.Display())
	assert.Equal(t, "three", items[2].Description.Display())
}

func TestTaskService_ListTasks_FallsBackToCacheWhenBackendDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, mockTasks, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	filter := models.TaskFilter{TodayOnly: true}
	cached := []models.Task{{ID: "task-1", Description: models.CipherText("ct-1")}}

	mockAdapter.EXPECT().ListTasks(ctx, filter).Return(nil, errors.New("connection refused"))
	mockTasks.EXPECT().ListTasks(ctx, filter).Return(cached, nil)
	mockCodec.EXPECT().Decrypt("ct-1", testPassphrase).Return("cached one", nil)

	items, err := svc.ListTasks(ctx, filter)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "cached one", items[0].Description.Text)
}

func TestTaskService_ListTasks_FilteredListingDoesNotReplaceCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	status := models.StatusCompleted
	filter := models.TaskFilter{Status: &status}

	// No ReplaceTasks expectation: a filtered result is a partial view.
	mockAdapter.EXPECT().ListTasks(ctx, filter).Return([]models.Task{}, nil)

	_, err := svc.ListTasks(ctx, filter)
	require.NoError(t, err)
}

// ── UpdateTask / ToggleTask / DeleteTask ────────────────────────────────────

func TestTaskService_UpdateTask_ReEncrypts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, mockTasks, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	existing := models.Task{ID: "task-1", Title: "Old", Description: models.CipherText("old-ct")}
	draft := models.TaskDraft{Title: "New title", Description: "new text"}

	mockTasks.EXPECT().GetTask(ctx, "task-1").Return(existing, nil)
	mockCodec.EXPECT().Encrypt("new text", testPassphrase).Return("new-ct", nil)
	mockAdapter.EXPECT().UpdateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, "task-1", task.ID)
			assert.Equal(t, "New title", task.Title)
			assert.Equal(t, models.CipherText("new-ct"), task.Description)
			return task, nil
		})
	mockTasks.EXPECT().SaveTask(ctx, gomock.Any()).Return(nil)

	item, err := svc.UpdateTask(ctx, "task-1", draft)
	require.NoError(t, err)
	assert.Equal(t, "new text", item.Description.Text)
}

func TestTaskService_ToggleTask_FlipsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, mockTasks, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	existing := models.Task{ID: "task-1", Status: models.StatusPending}

	mockTasks.EXPECT().GetTask(ctx, "task-1").Return(existing, nil)
	mockAdapter.EXPECT().UpdateTask(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, models.StatusCompleted, task.Status)
			return task, nil
		})
	mockTasks.EXPECT().SaveTask(ctx, gomock.Any()).Return(nil)

	item, err := svc.ToggleTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, item.Task.Status)
}

func TestTaskService_DeleteTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, mockTasks, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteTask(ctx, "task-1").Return(nil),
		mockTasks.EXPECT().DeleteTask(ctx, "task-1").Return(nil),
	)

	require.NoError(t, svc.DeleteTask(ctx, "task-1"))
}

func TestTaskService_DeleteTask_BackendErrorKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteTask(ctx, "task-1").Return(errors.New("bad gateway"))

	err := svc.DeleteTask(ctx, "task-1")
	assert.Error(t, err)
}

// ── Checklist operations ────────────────────────────────────────────────────

func TestTaskService_AddEntry_AppendsAtEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, _, mockChecklist := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	existing := []models.ChecklistEntry{
		{ID: "entry-1", TaskID: "task-1", Position: 0},
		{ID: "entry-2", TaskID: "task-1", Position: 1},
	}

	mockCodec.EXPECT().Encrypt("review PR", testPassphrase).Return("ct-label", nil)
	mockChecklist.EXPECT().ListEntries(ctx, "task-1").Return(existing, nil)
	mockAdapter.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry models.ChecklistEntry) (models.ChecklistEntry, error) {
			assert.Equal(t, 2, entry.Position)
			assert.Equal(t, models.CipherText("ct-label"), entry.Label)
			return entry, nil
		})
	mockChecklist.EXPECT().SaveEntry(ctx, gomock.Any()).Return(nil)

	item, err := svc.AddEntry(ctx, "task-1", "review PR")
	require.NoError(t, err)
	assert.Equal(t, "review PR", item.Label.Text)
	assert.Equal(t, 2, item.Entry.Position)
}

func TestTaskService_AddEntry_EmptyLabel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _ := newTestTaskSvc(t, ctrl)

	_, err := svc.AddEntry(context.Background(), "task-1", "  ")
	assert.ErrorIs(t, err, ErrEmptyEntryLabel)
}

func TestTaskService_ToggleEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCodec, _, mockChecklist := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.ChecklistEntry{
		{ID: "entry-1", TaskID: "task-1", Position: 0, Label: models.CipherText("ct-a")},
	}

	mockChecklist.EXPECT().ListEntries(ctx, "task-1").Return(entries, nil)
	mockAdapter.EXPECT().UpdateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry models.ChecklistEntry) (models.ChecklistEntry, error) {
			assert.True(t, entry.Completed)
			return entry, nil
		})
	mockChecklist.EXPECT().SaveEntry(ctx, gomock.Any()).Return(nil)
	mockCodec.EXPECT().Decrypt("ct-a", testPassphrase).Return("step", nil)

	item, err := svc.ToggleEntry(ctx, "task-1", "entry-1")
	require.NoError(t, err)
	assert.True(t, item.Entry.Completed)
	assert.Equal(t, "step", item.Label.Text)
}

func TestTaskService_ToggleEntry_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, mockChecklist := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockChecklist.EXPECT().ListEntries(ctx, "task-1").Return(nil, nil)

	_, err := svc.ToggleEntry(ctx, "task-1", "missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestTaskService_ReorderEntry_RenumbersChangedSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _, mockChecklist := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.ChecklistEntry{
		{ID: "entry-a", TaskID: "task-1", Position: 0},
		{ID: "entry-b", TaskID: "task-1", Position: 1},
		{ID: "entry-c", TaskID: "task-1", Position: 2},
	}

	mockChecklist.EXPECT().ListEntries(ctx, "task-1").Return(entries, nil)
	// Moving entry-b to the front renumbers entry-b and entry-a; entry-c
	// keeps its position and is not re-uploaded.
	mockAdapter.EXPECT().UpdateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry models.ChecklistEntry) (models.ChecklistEntry, error) {
			switch entry.ID {
			case "entry-b":
				assert.Equal(t, 0, entry.Position)
			case "entry-a":
				assert.Equal(t, 1, entry.Position)
			default:
				t.Errorf("unexpected entry update: %s", entry.ID)
			}
			return entry, nil
		}).Times(2)
	mockChecklist.EXPECT().ReplaceEntries(ctx, "task-1", gomock.Any()).Return(nil)

	require.NoError(t, svc.ReorderEntry(ctx, "task-1", "entry-b", 0))
}

func TestTaskService_ReorderEntry_SamePositionIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, mockChecklist := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	entries := []models.ChecklistEntry{
		{ID: "entry-a", TaskID: "task-1", Position: 0},
		{ID: "entry-b", TaskID: "task-1", Position: 1},
	}

	mockChecklist.EXPECT().ListEntries(ctx, "task-1").Return(entries, nil)

	require.NoError(t, svc.ReorderEntry(ctx, "task-1", "entry-b", 1))
}

func TestTaskService_ReorderEntry_UnknownEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, mockChecklist := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockChecklist.EXPECT().ListEntries(ctx, "task-1").Return(nil, nil)

	err := svc.ReorderEntry(ctx, "task-1", "ghost", 0)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestTaskService_DeleteEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _, mockChecklist := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteEntry(ctx, "entry-1").Return(nil),
		mockChecklist.EXPECT().DeleteEntry(ctx, "entry-1").Return(nil),
	)

	require.NoError(t, svc.DeleteEntry(ctx, "task-1", "entry-1"))
}

// ── Refresh ─────────────────────────────────────────────────────────────────

func TestTaskService_Refresh_MirrorsBackendIntoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, mockTasks, mockChecklist := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	backendTasks := []models.Task{{ID: "task-1"}, {ID: "task-2"}}
	entriesOne := []models.ChecklistEntry{{ID: "entry-1", TaskID: "task-1"}}

	mockAdapter.EXPECT().ListTasks(ctx, models.TaskFilter{}).Return(backendTasks, nil)
	mockTasks.EXPECT().ReplaceTasks(ctx, backendTasks).Return(nil)
	mockAdapter.EXPECT().ListEntries(ctx, "task-1").Return(entriesOne, nil)
	mockChecklist.EXPECT().ReplaceEntries(ctx, "task-1", entriesOne).Return(nil)
	mockAdapter.EXPECT().ListEntries(ctx, "task-2").Return(nil, nil)
	mockChecklist.EXPECT().ReplaceEntries(ctx, "task-2", nil).Return(nil)

	require.NoError(t, svc.Refresh(ctx))
}

func TestTaskService_Refresh_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _, _ := newTestTaskSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListTasks(ctx, models.TaskFilter{}).Return(nil, errors.New("connection refused"))

	assert.Error(t, svc.Refresh(ctx))
}
