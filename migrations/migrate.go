package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations for the given driver.
// The SQL lives in per-dialect directories because the two engines differ
// in autoincrement and numeric column syntax; both create the same two
// tables (food_entries, food_catalog) with IF NOT EXISTS guards.
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	var dialect, dir string
	switch driver {
	case "sqlite3":
		dialect, dir = "sqlite3", "sqlite"
	case "pgx":
		dialect, dir = "pgx", "postgres"
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
