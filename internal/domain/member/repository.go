package member

import (
	"context"
	"time"
)

// Repository abstracts member persistence.
//
// Upsert is the identity contract used by the login callback: it writes the
// provider-derived fields (line id, name, avatar) and, for an existing member,
// preserves balance, cumulative deposit and tier. Save overwrites the full
// record and is used for deposit bookkeeping.
type Repository interface {
	Upsert(ctx context.Context, m Member) (Member, error)
	Save(ctx context.Context, m Member) (Member, error)
	GetByID(ctx context.Context, id string) (Member, bool, error)
}

// Store caches member records in front of the repository.
type Store interface {
	Get(ctx context.Context, id string) (Member, bool, error)
	Save(ctx context.Context, m Member, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
