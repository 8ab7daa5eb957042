package models

// CatalogFood is one row of the static food reference table: a food name,
// its calorie density, and a free-text category label. The catalog is
// seeded once at startup and read-only afterwards; logged entries never
// reference it by key, so catalog edits cannot rewrite history.
type CatalogFood struct {
	ID              int64   `json:"-"`
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	Category        string  `json:"category"`
}

// TableName returns the name of the database table
// associated with the CatalogFood model.
func (c CatalogFood) TableName() string {
	return "food_catalog"
}
