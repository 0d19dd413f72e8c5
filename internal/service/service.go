package service

import (
	"context"
	"time"

	"github.com/wfca-mz/fire-widget/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// FireService is the request-to-response pipeline behind the active-fires
// endpoint: cache lookup, query on miss, best-effort store, sweep trigger.
type FireService interface {
	ListActive(ctx context.Context, q domain.FireQuery) (rows []domain.FireRow, cached bool, err error)
}

type FireRepository interface {
	ListActive(ctx context.Context, q domain.FireQuery) ([]domain.FireRow, error)
}

type CacheStore interface {
	Get(ctx context.Context, key string) ([]domain.FireRow, bool, error)
	Set(ctx context.Context, key string, rows []domain.FireRow, ttl time.Duration) error
	Sweep(ctx context.Context, maxAge time.Duration) (int, error)
}

type Service struct {
	FireService FireService
}

func NewService(fireService FireService) *Service {
	return &Service{FireService: fireService}
}
