package memberrepo

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/thetensy/tensy-api/internal/domain/member"
)

// MemoryRepository provides an in-memory member store for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	members map[string]member.Member
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{members: make(map[string]member.Member)}
}

// Upsert writes provider-derived fields, preserving stored-value fields for
// an existing member.
func (r *MemoryRepository) Upsert(_ context.Context, m member.Member) (member.Member, error) {
	if m.ID == "" {
		return member.Member{}, errors.New("member id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	existing, ok := r.members[m.ID]
	if ok {
		existing.LineID = m.LineID
		existing.Name = m.Name
		existing.Avatar = m.Avatar
		existing.UpdatedAt = now
		r.members[m.ID] = existing
		return existing, nil
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	r.members[m.ID] = m
	return m, nil
}

// Save overwrites the full record.
func (r *MemoryRepository) Save(_ context.Context, m member.Member) (member.Member, error) {
	if m.ID == "" {
		return member.Member{}, errors.New("member id is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[m.ID]; !ok {
		return member.Member{}, errors.New("member does not exist")
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = time.Now().UTC()
	}
	r.members[m.ID] = m
	return m, nil
}

// GetByID fetches by primary key.
func (r *MemoryRepository) GetByID(_ context.Context, id string) (member.Member, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[id]
	return m, ok, nil
}

var _ member.Repository = (*MemoryRepository)(nil)
