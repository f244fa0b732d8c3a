package session

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrations holds the schema migrations for PGStore, to be applied with
// pg.Migrate (or any goose-compatible runner) before first use.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the path of the embedded migrations inside Migrations.
const MigrationsDir = "migrations"

const defaultSessionsTable = "sessions"

// PGOption configures a PGStore.
type PGOption func(*pgStoreConfig)

type pgStoreConfig struct {
	table string
}

// WithTable overrides the sessions table name. The table must have the
// schema from the embedded migrations.
func WithTable(table string) PGOption {
	return func(c *pgStoreConfig) {
		c.table = table
	}
}

// PGStore is a durable Store implementation on PostgreSQL. Payloads are
// stored as jsonb next to an expires_at timestamp; reads filter out expired
// rows, and DeleteExpired purges them so the table does not grow without
// bound. Run the sweep from a periodic job sized to your session volume.
type PGStore[Data any] struct {
	pool  *pgxpool.Pool
	table string
}

// NewPGStore creates a postgres-backed store on an existing pool. The pool
// is owned by the caller.
func NewPGStore[Data any](pool *pgxpool.Pool, opts ...PGOption) *PGStore[Data] {
	cfg := pgStoreConfig{table: defaultSessionsTable}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &PGStore[Data]{pool: pool, table: cfg.table}
}

// Get returns the payload stored under token. Rows at or past expires_at
// are filtered out, so an expired session reads exactly like a missing one
// even before the sweep removes the row.
func (s *PGStore[Data]) Get(ctx context.Context, token string) (Data, bool, error) {
	var zero Data

	query := fmt.Sprintf(`SELECT data FROM %s WHERE token = $1 AND expires_at > now()`, s.table)

	var raw []byte
	if err := s.pool.QueryRow(ctx, query, token).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, false, nil
		}
		return zero, false, errors.Join(ErrStoreUnavailable, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return zero, false, errors.Join(ErrSerialization, err)
	}

	return data, true, nil
}

// Set upserts the record with expiry now + ttl.
func (s *PGStore[Data]) Set(ctx context.Context, token string, data Data, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return errors.Join(ErrSerialization, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (token, data, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO UPDATE SET data = EXCLUDED.data, expires_at = EXCLUDED.expires_at`,
		s.table)

	if _, err := s.pool.Exec(ctx, query, token, raw, time.Now().Add(ttl)); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Touch pushes expires_at forward on a live row without rewriting the
// payload. Absent and expired rows are left alone.
func (s *PGStore[Data]) Touch(ctx context.Context, token string, ttl time.Duration) error {
	query := fmt.Sprintf(`UPDATE %s SET expires_at = $2 WHERE token = $1 AND expires_at > now()`, s.table)

	if _, err := s.pool.Exec(ctx, query, token, time.Now().Add(ttl)); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Remove deletes the row. Idempotent.
func (s *PGStore[Data]) Remove(ctx context.Context, token string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE token = $1`, s.table)

	if _, err := s.pool.Exec(ctx, query, token); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteExpired purges all expired rows and returns how many were deleted.
func (s *PGStore[Data]) DeleteExpired(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE expires_at <= now()`, s.table)

	tag, err := s.pool.Exec(ctx, query)
	if err != nil {
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	return tag.RowsAffected(), nil
}
