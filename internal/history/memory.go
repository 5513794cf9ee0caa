package history

import (
	"context"
	"sync"
)

// MemoryStore is an in-process bounded buffer of recent runs. It is the
// default when no durable store is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	recs []Record // newest first
	keep int
}

// NewMemory returns a store holding at most keep records.
// A non-positive keep falls back to DefaultKeep.
func NewMemory(keep int) *MemoryStore {
	if keep <= 0 {
		keep = DefaultKeep
	}
	return &MemoryStore{keep: keep}
}

func (s *MemoryStore) Record(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = append([]Record{rec}, s.recs...)
	if len(s.recs) > s.keep {
		s.recs = s.recs[:s.keep]
	}
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.recs) {
		limit = len(s.recs)
	}
	out := make([]Record, limit)
	copy(out, s.recs[:limit])
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
