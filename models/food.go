package models

import (
	"errors"
	"time"
)

// MealType is the categorical tag attached to a logged food entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists all meal types in presentation order. Daily summaries
// report every meal type, including those with no entries.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

var (
	ErrEmptyFoodName       = errors.New("food name must not be empty")
	ErrNonPositiveCalories = errors.New("calories per 100g must be positive")
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	ErrUnknownMealType     = errors.New("unknown meal type")
	ErrZeroTimestamp       = errors.New("timestamp must be a valid instant")
)

// ValidMealType reports whether s names one of the four meal types.
func ValidMealType(s MealType) bool {
	switch s {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// FoodItem is a quantity of a named food with its calorie density.
// Both numeric fields are strictly positive, enforced at construction.
type FoodItem struct {
	Name            string  `json:"food_name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	QuantityGrams   float64 `json:"quantity_grams"`
}

// NewFoodItem validates and returns a FoodItem.
func NewFoodItem(name string, caloriesPer100g, quantityGrams float64) (FoodItem, error) {
	if name == "" {
		return FoodItem{}, ErrEmptyFoodName
	}
	if caloriesPer100g <= 0 {
		return FoodItem{}, ErrNonPositiveCalories
	}
	if quantityGrams <= 0 {
		return FoodItem{}, ErrNonPositiveQuantity
	}

	return FoodItem{
		Name:            name,
		CaloriesPer100g: caloriesPer100g,
		QuantityGrams:   quantityGrams,
	}, nil
}

// TotalCalories returns the calories in the whole quantity.
func (f FoodItem) TotalCalories() float64 {
	return f.CaloriesPer100g * f.QuantityGrams / 100
}

// FoodEntry is one logged intake record. The FoodItem is embedded by value:
// the calorie figures are a frozen snapshot, independent of any later edits
// to the reference catalog. Entries are append-only and never mutated.
type FoodEntry struct {
	ID        int64     `json:"id,omitempty"`
	MealType  MealType  `json:"meal_type"`
	FoodItem  FoodItem  `json:"food_item"`
	Timestamp time.Time `json:"timestamp"`
}

// NewFoodEntry validates and returns a FoodEntry.
func NewFoodEntry(mealType MealType, item FoodItem, ts time.Time) (FoodEntry, error) {
	if !ValidMealType(mealType) {
		return FoodEntry{}, ErrUnknownMealType
	}
	if ts.IsZero() {
		return FoodEntry{}, ErrZeroTimestamp
	}

	return FoodEntry{
		MealType:  mealType,
		FoodItem:  item,
		Timestamp: ts,
	}, nil
}

// Calories returns the entry's calorie value, derived from its food item.
func (e FoodEntry) Calories() float64 {
	return e.FoodItem.TotalCalories()
}
