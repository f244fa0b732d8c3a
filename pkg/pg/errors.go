package pg

import "errors"

var (
	ErrInvalidConfig     = errors.New("pg.invalid_config")
	ErrConnectionFailed  = errors.New("pg.connection_failed")
	ErrHealthcheckFailed = errors.New("pg.healthcheck_failed")
	ErrMigrationFailed   = errors.New("pg.migration_failed")
)
