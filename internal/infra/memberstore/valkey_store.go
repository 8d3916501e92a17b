package memberstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/thetensy/tensy-api/internal/domain/member"
)

// ValkeyStore caches member records in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "member"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Get(ctx context.Context, id string) (member.Member, bool, error) {
	if id == "" {
		return member.Member{}, false, nil
	}
	cmd := s.client.B().Get().Key(s.key(id)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return member.Member{}, false, nil
		}
		return member.Member{}, false, err
	}
	var m member.Member
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return member.Member{}, false, err
	}
	return m, true, nil
}

func (s *ValkeyStore) Save(ctx context.Context, m member.Member, ttl time.Duration) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.key(m.ID)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.client.Do(ctx, s.client.B().Del().Key(s.key(id)).Build()).Error()
}

func (s *ValkeyStore) key(id string) string {
	return s.prefix + ":" + id
}

var _ member.Store = (*ValkeyStore)(nil)
