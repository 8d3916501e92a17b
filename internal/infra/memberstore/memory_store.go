package memberstore

import (
	"context"
	"sync"
	"time"

	"github.com/thetensy/tensy-api/internal/domain/member"
)

type entry struct {
	payload   member.Member
	expiresAt time.Time
}

// MemoryStore is an in-memory member cache for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]entry)}
}

// Get implements member.Store.
func (s *MemoryStore) Get(_ context.Context, id string) (member.Member, bool, error) {
	s.mu.RLock()
	record, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return member.Member{}, false, nil
	}
	if hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		return member.Member{}, false, nil
	}
	return record.payload, true, nil
}

// Save caches the member with optional TTL.
func (s *MemoryStore) Save(_ context.Context, m member.Member, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.entries[m.ID] = entry{payload: m, expiresAt: exp}
	return nil
}

// Delete drops the cached record.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ member.Store = (*MemoryStore)(nil)
