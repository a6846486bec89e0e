package service

import (
	"github.com/mkhalitov/taskvault/internal/adapter"
	"github.com/mkhalitov/taskvault/internal/codec"
	"github.com/mkhalitov/taskvault/internal/logger"
	"github.com/mkhalitov/taskvault/internal/store"
)

type Services struct {
	Auth    AuthService
	Tasks   TaskService
	Refresh RefreshJob
}

func NewServices(cache *store.CacheStorages, backend adapter.BackendAdapter, log *logger.Logger) *Services {
	fieldCodec := codec.New()
	authSvc := NewAuthService(backend, cache.Session, log)
	taskSvc := NewTaskService(backend, fieldCodec, authSvc, cache.Tasks, cache.Checklist, log)

	return &Services{
		Auth:    authSvc,
		Tasks:   taskSvc,
		Refresh: NewRefreshJob(taskSvc, log),
	}
}
