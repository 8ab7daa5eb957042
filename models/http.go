package models

// CalculateRequest is the body of POST /api/calculate.
type CalculateRequest struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	ActivityLevel string  `json:"activity_level"`
}

// AddEntryRequest is the body of POST /api/food-entries. The same field
// names are used by the HTML form so both surfaces share one parse path.
// Timestamp is optional RFC 3339; when empty the server uses the current time.
type AddEntryRequest struct {
	FoodName        string  `json:"food_name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	Quantity        float64 `json:"quantity"`
	MealType        string  `json:"meal_type"`
	Timestamp       string  `json:"timestamp,omitempty"`
}
