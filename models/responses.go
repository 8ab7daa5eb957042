package models

// EnergyResult is the outcome of one BMR/TDEE calculation.
// All figures are rounded to one decimal place.
type EnergyResult struct {
	// BMR is the basal metabolic rate in kcal/day.
	BMR float64 `json:"bmr"`

	// TDEE is the total daily energy expenditure: BMR scaled by the
	// user's activity multiplier.
	TDEE float64 `json:"tdee"`

	// WeightLoss is the daily intake target for losing weight,
	// a fixed 500 kcal deficit below TDEE.
	WeightLoss float64 `json:"weight_loss"`

	// WeightGain is the daily intake target for gaining weight,
	// a fixed 500 kcal surplus above TDEE.
	WeightGain float64 `json:"weight_gain"`
}

// EntryView is one logged entry as returned by the intake-read endpoint.
// It flattens the food snapshot and adds the derived calorie value.
type EntryView struct {
	ID              int64   `json:"id"`
	FoodName        string  `json:"food_name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	QuantityGrams   float64 `json:"quantity_grams"`
	MealType        string  `json:"meal_type"`
	Calories        float64 `json:"calories"`
	Timestamp       string  `json:"timestamp"`
}

// DailySummary aggregates one calendar day of intake.
// MealBreakdown always contains all four meal types, zero when empty.
type DailySummary struct {
	Date          string             `json:"date"`
	TotalCalories float64            `json:"total_calories"`
	MealBreakdown map[string]float64 `json:"meal_breakdown"`
	EntryCount    int                `json:"entry_count"`
	Entries       []EntryView        `json:"entries"`
}

// AddEntryResponse is returned by the intake-write endpoint.
type AddEntryResponse struct {
	ID       int64   `json:"id"`
	Calories float64 `json:"calories"`
}
