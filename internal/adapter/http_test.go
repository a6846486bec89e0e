// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalitov/taskvault/internal/config"
	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpBackendAdapter {
	t.Helper()
	cfg := config.ClientBackend{Address: serverURL}

	a, err := NewHTTPBackendAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

func testJWT(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-key"))
	require.NoError(t, err)
	return s
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	token := testJWT(t, jwt.MapClaims{"email": "alice@example.com", "exp": float64(4102444800)})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice@example.com", creds.Email)

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	session, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", session.Email)
	assert.Equal(t, token, session.AccessToken)
	assert.False(t, session.ExpiresAt.IsZero())
	assert.Equal(t, token, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad credentials"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("email already registered"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

// ── Tasks ───────────────────────────────────────────────────────────────────

func TestListTasks_FilterAndAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tasks", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		assert.Equal(t, "true", r.URL.Query().Get("today"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Task{
			{ID: "t1", Title: "first", Status: models.StatusPending, Description: "opaque"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-123")

	status := models.StatusPending
	tasks, err := a.ListTasks(context.Background(), models.TaskFilter{Status: &status, TodayOnly: true})

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, models.CipherText("opaque"), tasks[0].Description)
}

// A flaky gateway must not surface to the caller: reads are retried.
func TestListTasks_RetriesOnBadGateway(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode([]models.Task{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListTasks(context.Background(), models.TaskFilter{})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestCreateTask_NotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateTask(context.Background(), models.Task{ID: "t1", Title: "x"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadGateway))
	assert.Equal(t, int32(1), calls.Load(), "writes must not be retried")
}

func TestDeleteTask_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/tasks/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteTask(context.Background(), "missing")

	assert.True(t, errors.Is(err, ErrNotFound))
}

// ── Checklist ───────────────────────────────────────────────────────────────

func TestCreateEntry_PostsUnderTask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/tasks/t1/checklist", r.URL.Path)

		var entry models.ChecklistEntry
		require.NoError(t, json.NewDecoder(r.Body).Decode(&entry))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entry)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	created, err := a.CreateEntry(context.Background(), models.ChecklistEntry{
		ID: "e1", TaskID: "t1", Position: 0, Label: "opaque-label",
	})

	require.NoError(t, err)
	assert.Equal(t, "e1", created.ID)
	assert.Equal(t, models.CipherText("opaque-label"), created.Label)
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNewHTTPBackendAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPBackendAdapter(config.ClientBackend{Address: "   "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://api.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", got)
}
