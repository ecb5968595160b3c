package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool used by Postgres.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS price_cache (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS price_cache_expires_at_idx ON price_cache (expires_at);
`

const upsertSQL = `
	INSERT INTO price_cache (key, value, expires_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at
`

// Postgres is a Store backed by the price_cache table.
type Postgres struct {
	db  DB
	now func() time.Time
}

// NewPostgres creates a store on db. Call EnsureSchema before first use on
// a fresh database.
func NewPostgres(db DB) *Postgres {
	return &Postgres{
		db:  db,
		now: time.Now,
	}
}

// EnsureSchema creates the price_cache table if it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create price_cache: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := p.db.QueryRow(ctx,
		`SELECT value FROM price_cache WHERE key = $1 AND expires_at > $2`,
		key, p.now(),
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if _, err := p.db.Exec(ctx, upsertSQL, key, value, p.now().Add(ttl)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// SetMulti upserts all entries in a single batch.
func (p *Postgres) SetMulti(ctx context.Context, entries map[string][]byte, ttl time.Duration) error {
	if len(entries) == 0 {
		return nil
	}

	expiresAt := p.now().Add(ttl)
	batch := &pgx.Batch{}
	for key, value := range entries {
		batch.Queue(upsertSQL, key, value, expiresAt)
	}

	results := p.db.SendBatch(ctx, batch)
	defer results.Close()

	for range entries {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch set: %w", err)
		}
	}
	return nil
}

// Purge deletes expired rows.
func (p *Postgres) Purge(ctx context.Context) (int64, error) {
	ct, err := p.db.Exec(ctx, `DELETE FROM price_cache WHERE expires_at <= $1`, p.now())
	if err != nil {
		return 0, fmt.Errorf("purge price_cache: %w", err)
	}
	return ct.RowsAffected(), nil
}
