// Package memcache is the in-process cache store, used when the service
// runs as a single instance without Redis.
package memcache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/wfca-mz/fire-widget/internal/cache"
	"github.com/wfca-mz/fire-widget/internal/cache/keys"
	"github.com/wfca-mz/fire-widget/internal/domain"
)

var _ cache.Store = (*Store)(nil)

type entry struct {
	rows      []domain.FireRow
	expiresAt time.Time
	storedAt  time.Time
}

type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) ([]domain.FireRow, bool, error) {
	s.mu.RLock()
	en, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if s.now().After(en.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry since the read above.
		if cur, ok := s.entries[key]; ok && s.now().After(cur.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false, nil
	}
	return en.rows, true, nil
}

func (s *Store) Set(_ context.Context, key string, rows []domain.FireRow, ttl time.Duration) error {
	now := s.now()
	s.mu.Lock()
	s.entries[key] = entry{rows: rows, expiresAt: now.Add(ttl), storedAt: now}
	s.mu.Unlock()
	return nil
}

func (s *Store) Sweep(_ context.Context, maxAge time.Duration) (int, error) {
	now := s.now()
	removed := 0
	s.mu.Lock()
	for key, en := range s.entries {
		if !strings.HasPrefix(key, keys.Prefix) {
			continue
		}
		if now.Sub(en.storedAt) > maxAge {
			delete(s.entries, key)
			removed++
		}
	}
	s.mu.Unlock()
	return removed, nil
}
