package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/models"
)

// catalogRepository is the SQL-backed implementation of [CatalogRepository].
// It serves the static "food_catalog" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type catalogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCatalogRepository constructs a [CatalogRepository] backed by the
// provided database connection and logger.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

// Seed inserts the fixed food catalog inside one transaction, guarded by a
// row count so that re-running startup never duplicates rows. A concurrent
// seeder losing the race hits the UNIQUE(name) constraint, which is treated
// as already-seeded rather than a failure.
func (r *catalogRepository) Seed(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Seed").Msg("error: cannot begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	countQuery, countArgs, err := buildCountCatalogQuery(r.db.driver)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*catalogRepository.Seed").Msg("error: counting catalog rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// already populated
	if count > 0 {
		return nil
	}

	insertQuery, insertArgs, err := buildInsertCatalogQuery(r.db.driver, catalogSeed)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			// another instance seeded first
			return nil
		}
		log.Err(err).Str("func", "*catalogRepository.Seed").Msg("error: inserting catalog seed")
		r.db.logIfRetryable(log, err)
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*catalogRepository.Seed").Msg("error: committing seed transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().Int("rows", len(catalogSeed)).Msg("food catalog seeded")
	return nil
}

// Search returns up to limit catalog rows whose name contains query,
// case-insensitive, ordered alphabetically.
func (r *catalogRepository) Search(ctx context.Context, query string, limit uint64) ([]models.CatalogFood, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSearchFoodQuery(r.db.driver, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Search").Msg("error: executing search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var foods []models.CatalogFood
	for rows.Next() {
		var f models.CatalogFood
		if err := rows.Scan(&f.ID, &f.Name, &f.CaloriesPer100g, &f.Category); err != nil {
			log.Err(err).Str("func", "*catalogRepository.Search").Msg("error: scanning catalog row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return foods, nil
}

// GetByName returns the catalog row matching name exactly,
// case-insensitive. A miss yields [ErrFoodNotFound].
func (r *catalogRepository) GetByName(ctx context.Context, name string) (models.CatalogFood, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildGetFoodByNameQuery(r.db.driver, name)
	if err != nil {
		return models.CatalogFood{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var f models.CatalogFood
	row := r.db.QueryRowContext(ctx, sqlQuery, args...)
	if err := row.Scan(&f.ID, &f.Name, &f.CaloriesPer100g, &f.Category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CatalogFood{}, ErrFoodNotFound
		}
		log.Err(err).Str("func", "*catalogRepository.GetByName").Msg("error: scanning catalog row")
		return models.CatalogFood{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return f, nil
}
