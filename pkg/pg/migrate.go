package pg

import (
	"context"
	"errors"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies goose SQL migrations from fsys (typically an embed.FS)
// against the pool. dir is the migrations directory inside fsys, e.g.
// session.MigrationsDir for the bundled sessions schema; "." means the
// migrations sit at the root of fsys.
//
// goose only speaks database/sql, so the pool is bridged through
// stdlib.OpenDBFromPool; closing the bridge does not close the pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS, dir string) error {
	if dir != "" && dir != "." {
		sub, err := fs.Sub(fsys, dir)
		if err != nil {
			return errors.Join(ErrMigrationFailed, err)
		}
		fsys = sub
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	return nil
}
