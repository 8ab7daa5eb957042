package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/caltrack/caltrack/internal/config"
	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/migrations"
)

// Driver names registered with database/sql.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// DB wraps the shared *sql.DB handle together with the driver it was opened
// with. The driver decides placeholder format, RETURNING support, and which
// migration directory applies.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Driver returns the database/sql driver name the handle was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// logIfRetryable marks failures the classifier considers transient. Nothing
// is retried; the log line lets operators tell connection loss apart from
// schema or constraint problems.
func (db *DB) logIfRetryable(log *logger.Logger, err error) {
	if db.errorClassificator == nil {
		return
	}
	if db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Err(err).Msg("transient database error, operation may succeed on retry")
	}
}

// Migrate applies all pending schema migrations for the connected engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// NewConnect opens a database connection for the DSN in cfg. A
// "postgres://" or "postgresql://" URI selects the pgx driver; any other
// value is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}
