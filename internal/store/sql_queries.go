package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/caltrack/caltrack/models"
)

// builderFor returns a squirrel statement builder with the placeholder
// format matching the driver: $1 for Postgres, ? for SQLite.
func builderFor(driver string) sq.StatementBuilderType {
	if driver == DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// buildSearchFoodQuery builds the substring search over the catalog:
// case-insensitive containment, alphabetical order, capped at limit.
func buildSearchFoodQuery(driver, query string, limit uint64) (string, []any, error) {
	return builderFor(driver).
		Select("id", "name", "calories_per_100g", "category").
		From("food_catalog").
		Where(sq.Expr("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%")).
		OrderBy("name ASC").
		Limit(limit).
		ToSql()
}

// buildGetFoodByNameQuery builds the case-insensitive exact-name lookup.
func buildGetFoodByNameQuery(driver, name string) (string, []any, error) {
	return builderFor(driver).
		Select("id", "name", "calories_per_100g", "category").
		From("food_catalog").
		Where(sq.Expr("LOWER(name) = LOWER(?)", name)).
		ToSql()
}

// buildCountCatalogQuery builds the row count used as the seed guard.
func buildCountCatalogQuery(driver string) (string, []any, error) {
	return builderFor(driver).
		Select("COUNT(*)").
		From("food_catalog").
		ToSql()
}

// buildInsertCatalogQuery builds one multi-row INSERT for the whole seed
// catalog.
func buildInsertCatalogQuery(driver string, foods []models.CatalogFood) (string, []any, error) {
	insert := builderFor(driver).
		Insert("food_catalog").
		Columns("name", "calories_per_100g", "category")

	for _, f := range foods {
		insert = insert.Values(f.Name, f.CaloriesPer100g, f.Category)
	}

	return insert.ToSql()
}

// buildInsertEntryQuery builds the food entry INSERT. On Postgres the
// generated id is obtained via RETURNING; SQLite uses LastInsertId instead.
//
// Timestamps are bound in UTC. go-sqlite3 stores time.Time as a text
// literal carrying the zone offset, and range filters on such text compare
// lexicographically, so mixed-zone rows would bucket into wrong days.
func buildInsertEntryQuery(driver string, entry models.FoodEntry) (string, []any, error) {
	insert := builderFor(driver).
		Insert("food_entries").
		Columns("food_name", "calories_per_100g", "quantity_grams", "meal_type", "ts").
		Values(
			entry.FoodItem.Name,
			entry.FoodItem.CaloriesPer100g,
			entry.FoodItem.QuantityGrams,
			string(entry.MealType),
			entry.Timestamp.UTC(),
		)

	if driver == DriverPostgres {
		insert = insert.Suffix("RETURNING id")
	}

	return insert.ToSql()
}

// buildListEntriesByDayQuery builds the day query as a half-open timestamp
// range [start, end). A range keeps the statement portable across engines
// and lets an index on ts serve it. Bounds are bound in UTC to match the
// stored representation (see buildInsertEntryQuery).
func buildListEntriesByDayQuery(driver string, start, end time.Time) (string, []any, error) {
	return builderFor(driver).
		Select("id", "food_name", "calories_per_100g", "quantity_grams", "meal_type", "ts").
		From("food_entries").
		Where(sq.GtOrEq{"ts": start.UTC()}).
		Where(sq.Lt{"ts": end.UTC()}).
		OrderBy("ts ASC").
		ToSql()
}
