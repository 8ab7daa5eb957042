package store

import (
	"context"
	"time"

	"github.com/caltrack/caltrack/models"
)

// CatalogRepository is the port for the static food reference table.
// The catalog is seeded once at startup and read-only afterwards.
type CatalogRepository interface {
	// Seed inserts the fixed food catalog if the table is empty.
	// Idempotent: a populated table is left untouched.
	Seed(ctx context.Context) error

	// Search returns up to limit rows whose name contains query
	// (case-insensitive), ordered alphabetically by name.
	Search(ctx context.Context, query string, limit uint64) ([]models.CatalogFood, error)

	// GetByName returns the row whose name matches exactly,
	// case-insensitive. A miss yields [ErrFoodNotFound].
	GetByName(ctx context.Context, name string) (models.CatalogFood, error)
}

// IntakeRepository is the port for the append-only food entry log.
type IntakeRepository interface {
	// Append persists the entry and returns its generated identifier.
	Append(ctx context.Context, entry models.FoodEntry) (int64, error)

	// ListByDay returns every entry whose timestamp falls on the given
	// calendar day, ordered by timestamp ascending.
	ListByDay(ctx context.Context, day time.Time) ([]models.FoodEntry, error)
}

// ErrorClassificator tells transient database failures apart from permanent
// ones. Used for logging only; no operation is retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
