package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/mkhalitov/taskvault/internal/config"
	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/internal/utils"
	"github.com/mkhalitov/taskvault/models"
)

const (
	readRetryAttempts = 3
	readRetryBase     = 200 * time.Millisecond
)

type httpBackendAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// cfg.Address and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a valid
// URL.
func NewHTTPBackendAdapter(cfg config.ClientBackend, log *logger.Logger) (BackendAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid backend address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpBackendAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BackendAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all
// subsequent authenticated requests.
func (h *httpBackendAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [BackendAdapter].
func (h *httpBackendAdapter) Token() string {
	return h.token
}

// Register implements [BackendAdapter]. It POSTs the credentials to
// POST /api/auth/register. On success the bearer token is extracted from
// the Authorization response header and stored via SetToken.
func (h *httpBackendAdapter) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/register")
	if err != nil {
		return models.Session{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return h.sessionFromResponse(creds.Email, resp)
}

// Login implements [BackendAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpBackendAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	return h.sessionFromResponse(creds.Email, resp)
}

func (h *httpBackendAdapter) sessionFromResponse(email string, resp *resty.Response) (models.Session, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("parse bearer token: %w", err)
	}
	h.SetToken(token)

	// Expiry is read from the token's own claims without verifying the
	// signature; verification is the backend's job.
	expiresAt, err := utils.TokenExpiry(token)
	if err != nil {
		h.logger.Warn().Err(err).Msg("token expiry not readable, treating session as non-expiring")
		expiresAt = time.Time{}
	}

	return models.Session{Email: email, AccessToken: token, ExpiresAt: expiresAt}, nil
}

// CreateTask implements [BackendAdapter]. POST /api/tasks.
func (h *httpBackendAdapter) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	var created models.Task

	resp, err := h.authorized(ctx).
		SetBody(task).
		SetResult(&created).
		Post("/api/tasks")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return created, nil
}

// ListTasks implements [BackendAdapter]. GET /api/tasks with the filter
// encoded as query parameters. The request is idempotent and retried with
// exponential backoff on transport failures and gateway errors.
func (h *httpBackendAdapter) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	resp, err := h.doRead(ctx, func(ctx context.Context) (*resty.Response, error) {
		return h.authorized(ctx).
			SetQueryParams(filterQueryParams(filter)).
			SetResult(&tasks).
			Get("/api/tasks")
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateTask implements [BackendAdapter]. PUT /api/tasks/{id}.
func (h *httpBackendAdapter) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	var updated models.Task

	resp, err := h.authorized(ctx).
		SetBody(task).
		SetResult(&updated).
		Put("/api/tasks/" + url.PathEscape(task.ID))
	if err != nil {
		return models.Task{}, fmt.Errorf("update task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return updated, nil
}

// DeleteTask implements [BackendAdapter]. DELETE /api/tasks/{id}. The
// backend cascades the delete to the task's checklist entries.
func (h *httpBackendAdapter) DeleteTask(ctx context.Context, taskID string) error {
	resp, err := h.authorized(ctx).
		Delete("/api/tasks/" + url.PathEscape(taskID))
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}
	return mapHTTPError(resp)
}

// CreateEntry implements [BackendAdapter]. POST /api/tasks/{id}/checklist.
func (h *httpBackendAdapter) CreateEntry(ctx context.Context, entry models.ChecklistEntry) (models.ChecklistEntry, error) {
	var created models.ChecklistEntry

	resp, err := h.authorized(ctx).
		SetBody(entry).
		SetResult(&created).
		Post("/api/tasks/" + url.PathEscape(entry.TaskID) + "/checklist")
	if err != nil {
		return models.ChecklistEntry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChecklistEntry{}, err
	}

	return created, nil
}

// ListEntries implements [BackendAdapter]. GET /api/tasks/{id}/checklist,
// retried like ListTasks.
func (h *httpBackendAdapter) ListEntries(ctx context.Context, taskID string) ([]models.ChecklistEntry, error) {
	var entries []models.ChecklistEntry

	resp, err := h.doRead(ctx, func(ctx context.Context) (*resty.Response, error) {
		return h.authorized(ctx).
			SetResult(&entries).
			Get("/api/tasks/" + url.PathEscape(taskID) + "/checklist")
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return entries, nil
}

// UpdateEntry implements [BackendAdapter]. PUT /api/checklist/{id}.
func (h *httpBackendAdapter) UpdateEntry(ctx context.Context, entry models.ChecklistEntry) (models.ChecklistEntry, error) {
	var updated models.ChecklistEntry

	resp, err := h.authorized(ctx).
		SetBody(entry).
		SetResult(&updated).
		Put("/api/checklist/" + url.PathEscape(entry.ID))
	if err != nil {
		return models.ChecklistEntry{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChecklistEntry{}, err
	}

	return updated, nil
}

// DeleteEntry implements [BackendAdapter]. DELETE /api/checklist/{id}.
func (h *httpBackendAdapter) DeleteEntry(ctx context.Context, entryID string) error {
	resp, err := h.authorized(ctx).
		Delete("/api/checklist/" + url.PathEscape(entryID))
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) authorized(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

// doRead runs an idempotent request with exponential backoff. Transport
// errors and gateway errors are retried; any other response is returned to
// the caller for status mapping. Writes never go through this path.
func (h *httpBackendAdapter) doRead(ctx context.Context, do func(ctx context.Context) (*resty.Response, error)) (*resty.Response, error) {
	var resp *resty.Response

	backoff := retry.WithMaxRetries(readRetryAttempts, retry.NewExponential(readRetryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var reqErr error
		resp, reqErr = do(ctx)
		if reqErr != nil {
			return retry.RetryableError(reqErr)
		}
		switch resp.StatusCode() {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return retry.RetryableError(mapHTTPError(resp))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func filterQueryParams(filter models.TaskFilter) map[string]string {
	params := make(map[string]string, 4)
	if filter.Status != nil {
		params["status"] = string(*filter.Status)
	}
	if filter.TodayOnly {
		params["today"] = strconv.FormatBool(true)
	}
	if filter.CreatedFrom != nil {
		params["created_from"] = filter.CreatedFrom.UTC().Format(time.RFC3339)
	}
	if filter.CreatedTo != nil {
		params["created_to"] = filter.CreatedTo.UTC().Format(time.RFC3339)
	}
	return params
}
