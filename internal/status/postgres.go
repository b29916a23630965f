package status

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// listCap bounds ListAll; the API never pages this collection.
const listCap = 1000

type PG struct {
	pool *pgxpool.Pool
}

func NewPG(pool *pgxpool.Pool) *PG {
	return &PG{pool: pool}
}

func (s *PG) Insert(ctx context.Context, c Check) error {
	_, err := s.pool.Exec(ctx, `
		insert into status_checks (id, client_name, created_at)
		values ($1, $2, $3)
	`, c.ID, c.ClientName, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (s *PG) ListAll(ctx context.Context) ([]Check, error) {
	rows, err := s.pool.Query(ctx, `
		select id, client_name, created_at
		from status_checks
		order by created_at, id
		limit $1
	`, listCap)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer rows.Close()

	checks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Check, error) {
		var c Check
		err := row.Scan(&c.ID, &c.ClientName, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan status checks: %w", err)
	}
	return checks, nil
}

// DeleteOlderThan removes checks created before the cutoff. Used by the
// retention worker, not by the HTTP API.
func (s *PG) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		delete from status_checks
		where created_at < $1
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old status checks: %w", err)
	}
	return tag.RowsAffected(), nil
}
