package credstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores credentials in the credentials table (see migrations).
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := p.pool.QueryRow(ctx,
		`SELECT value FROM credentials WHERE key = $1`, key).Scan(&value)
	if err == pgx.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get credential: %w", err)
	}
	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO credentials (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = now()`,
		key, value)
	if err != nil {
		return fmt.Errorf("set credential: %w", err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM credentials WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}
