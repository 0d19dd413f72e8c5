// Package cache defines the response cache contract shared by the memory,
// file and Redis backed stores. Caching is best-effort everywhere: a store
// error is treated as a miss by the caller, never as a request failure.
package cache

import (
	"context"
	"time"

	"github.com/wfca-mz/fire-widget/internal/domain"
)

type Store interface {
	// Get returns the cached rows for key, or ok=false when the key is
	// absent, expired or the backend failed. An expired entry may be
	// deleted lazily during the call.
	Get(ctx context.Context, key string) (rows []domain.FireRow, ok bool, err error)

	// Set stores rows under key with expires_at = now + ttl, replacing any
	// existing entry. Last writer wins; readers never observe a torn write.
	Set(ctx context.Context, key string, rows []domain.FireRow, ttl time.Duration) error

	// Sweep deletes entries in this store's namespace whose storage age
	// exceeds maxAge and reports how many were removed. It bounds growth of
	// stale entries only; TTL enforcement happens in Get regardless.
	Sweep(ctx context.Context, maxAge time.Duration) (int, error)
}
