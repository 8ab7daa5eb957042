package store

import (
	"context"
	"fmt"
	"time"

	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/models"
)

// intakeRepository is the SQL-backed implementation of [IntakeRepository].
// It serves the append-only "food_entries" table; no update or delete is
// exposed to the application layer.
type intakeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewIntakeRepository constructs an [IntakeRepository] backed by the
// provided database connection and logger.
func NewIntakeRepository(db *DB, logger *logger.Logger) IntakeRepository {
	logger.Debug().Msg("creating intake repository")
	return &intakeRepository{
		db:     db,
		logger: logger,
	}
}

// Append persists entry and returns the generated identifier. On Postgres
// the id comes back via RETURNING; SQLite reports it through LastInsertId.
// A storage failure is wrapped and surfaced — never retried here.
func (r *intakeRepository) Append(ctx context.Context, entry models.FoodEntry) (int64, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildInsertEntryQuery(r.db.driver, entry)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if r.db.driver == DriverPostgres {
		var id int64
		if err := r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(&id); err != nil {
			log.Err(err).Str("func", "*intakeRepository.Append").Msg("error: inserting food entry")
			r.db.logIfRetryable(log, err)
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return id, nil
	}

	result, err := r.db.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*intakeRepository.Append").Msg("error: inserting food entry")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*intakeRepository.Append").Msg("error: reading generated id")
		return 0, fmt.Errorf("%w: %w", ErrEntryNotSaved, err)
	}

	return id, nil
}

// ListByDay returns every entry whose timestamp falls on the calendar day
// of day, in day's location, ordered by timestamp ascending.
func (r *intakeRepository) ListByDay(ctx context.Context, day time.Time) ([]models.FoodEntry, error) {
	log := logger.FromContext(ctx)

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	sqlQuery, args, err := buildListEntriesByDayQuery(r.db.driver, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*intakeRepository.ListByDay").Msg("error: executing day query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.FoodEntry
	for rows.Next() {
		var (
			e        models.FoodEntry
			mealType string
		)
		if err := rows.Scan(
			&e.ID,
			&e.FoodItem.Name,
			&e.FoodItem.CaloriesPer100g,
			&e.FoodItem.QuantityGrams,
			&mealType,
			&e.Timestamp,
		); err != nil {
			log.Err(err).Str("func", "*intakeRepository.ListByDay").Msg("error: scanning entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		e.MealType = models.MealType(mealType)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
