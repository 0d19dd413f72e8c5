// Package filecache stores cache entries as JSON files, one per key, for
// standalone deployments without Redis. Entries carry their own expiry
// timestamp; file mtime is the storage age used by Sweep.
package filecache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/wfca-mz/fire-widget/internal/cache"
	"github.com/wfca-mz/fire-widget/internal/cache/keys"
	"github.com/wfca-mz/fire-widget/internal/domain"
)

var _ cache.Store = (*Store)(nil)

type fileEntry struct {
	Expires int64            `json:"expires"`
	Data    []domain.FireRow `json:"data"`
}

type Store struct {
	dir string
	now func() time.Time
}

func New(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

func (s *Store) Get(_ context.Context, key string) ([]domain.FireRow, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var en fileEntry
	if err := json.Unmarshal(raw, &en); err != nil {
		// Corrupt entry, drop it and report a miss.
		_ = os.Remove(s.path(key))
		return nil, false, nil
	}

	if s.now().Unix() > en.Expires {
		_ = os.Remove(s.path(key))
		return nil, false, nil
	}

	return en.Data, true, nil
}

func (s *Store) Set(_ context.Context, key string, rows []domain.FireRow, ttl time.Duration) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	raw, err := json.Marshal(fileEntry{
		Expires: s.now().Add(ttl).Unix(),
		Data:    rows,
	})
	if err != nil {
		return err
	}

	// Write-then-rename keeps the entry atomic for concurrent readers.
	tmp := s.path(key) + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func (s *Store) Sweep(_ context.Context, maxAge time.Duration) (int, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	removed := 0
	now := s.now()
	for _, de := range dirents {
		name := de.Name()
		if !strings.HasPrefix(name, keys.Prefix) {
			continue
		}
		if !strings.HasSuffix(name, ".json") && !strings.HasSuffix(name, ".tmp") {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			if os.Remove(filepath.Join(s.dir, name)) == nil {
				removed++
			}
		}
	}
	return removed, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
