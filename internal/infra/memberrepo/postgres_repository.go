package memberrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thetensy/tensy-api/internal/domain/member"
)

// PostgresRepository persists members in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Upsert inserts the member or refreshes its provider-derived fields,
// leaving balance, cumulative deposit and tier untouched on conflict.
func (r *PostgresRepository) Upsert(ctx context.Context, m member.Member) (member.Member, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO members (id, line_id, name, avatar, balance, total_deposit, tier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT (id) DO UPDATE
		SET line_id = EXCLUDED.line_id,
		    name = EXCLUDED.name,
		    avatar = EXCLUDED.avatar,
		    updated_at = now()
		RETURNING id, line_id, name, avatar, balance, total_deposit, tier, created_at, updated_at
	`, m.ID, m.LineID, m.Name, m.Avatar, m.Balance, m.TotalDeposit, string(m.Tier))
	return scanMember(row)
}

// Save overwrites the full record.
func (r *PostgresRepository) Save(ctx context.Context, m member.Member) (member.Member, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE members
		SET line_id = $2, name = $3, avatar = $4, balance = $5, total_deposit = $6, tier = $7, updated_at = now()
		WHERE id = $1
		RETURNING id, line_id, name, avatar, balance, total_deposit, tier, created_at, updated_at
	`, m.ID, m.LineID, m.Name, m.Avatar, m.Balance, m.TotalDeposit, string(m.Tier))
	return scanMember(row)
}

// GetByID fetches by primary key.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (member.Member, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, line_id, name, avatar, balance, total_deposit, tier, created_at, updated_at
		FROM members
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return member.Member{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return member.Member{}, false, rows.Err()
	}
	m, err := scanMember(rows)
	if err != nil {
		return member.Member{}, false, err
	}
	return m, true, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (member.Member, error) {
	var (
		m       member.Member
		tier    string
		created time.Time
		updated time.Time
	)
	if err := row.Scan(&m.ID, &m.LineID, &m.Name, &m.Avatar, &m.Balance, &m.TotalDeposit, &tier, &created, &updated); err != nil {
		return member.Member{}, err
	}
	m.Tier = member.Tier(tier)
	m.CreatedAt = created.UTC()
	m.UpdatedAt = updated.UTC()
	return m, nil
}

var _ member.Repository = (*PostgresRepository)(nil)
