package validators

import (
	"time"

	"github.com/caltrack/caltrack/models"
)

// UserFromRequest validates a calculation request and builds the domain
// user. The first violated constraint aborts the conversion.
func UserFromRequest(req models.CalculateRequest) (models.User, error) {
	gender, err := ParseGender(req.Gender)
	if err != nil {
		return models.User{}, err
	}

	level, err := ParseActivityLevel(req.ActivityLevel)
	if err != nil {
		return models.User{}, err
	}

	return models.NewUser(req.Age, gender, req.Weight, req.Height, level)
}

// EntryFromRequest validates an intake request and builds the domain entry.
// A missing timestamp defaults to now.
func EntryFromRequest(req models.AddEntryRequest, now time.Time) (models.FoodEntry, error) {
	mealType, err := ParseMealType(req.MealType)
	if err != nil {
		return models.FoodEntry{}, err
	}

	ts, err := ParseTimestamp(req.Timestamp, now)
	if err != nil {
		return models.FoodEntry{}, err
	}

	item, err := models.NewFoodItem(req.FoodName, req.CaloriesPer100g, req.Quantity)
	if err != nil {
		return models.FoodEntry{}, err
	}

	return models.NewFoodEntry(mealType, item, ts)
}
