package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caltrack/caltrack/models"
)

func TestUserFromRequest_Valid(t *testing.T) {
	req := models.CalculateRequest{
		Age:           30,
		Gender:        "male",
		Weight:        70,
		Height:        175,
		ActivityLevel: "moderate",
	}

	user, err := UserFromRequest(req)

	require.NoError(t, err)
	assert.Equal(t, models.User{
		Age:           30,
		Gender:        models.GenderMale,
		WeightKG:      70,
		HeightCM:      175,
		ActivityLevel: models.ActivityModerate,
	}, user)
}

func TestUserFromRequest_Invalid(t *testing.T) {
	valid := models.CalculateRequest{
		Age: 30, Gender: "male", Weight: 70, Height: 175, ActivityLevel: "moderate",
	}

	tests := []struct {
		name    string
		mutate  func(*models.CalculateRequest)
		wantErr error
	}{
		{"zero age", func(r *models.CalculateRequest) { r.Age = 0 }, models.ErrAgeOutOfRange},
		{"age above 120", func(r *models.CalculateRequest) { r.Age = 121 }, models.ErrAgeOutOfRange},
		{"weight above 500", func(r *models.CalculateRequest) { r.Weight = 501 }, models.ErrWeightOutOfRange},
		{"height above 300", func(r *models.CalculateRequest) { r.Height = 301 }, models.ErrHeightOutOfRange},
		{"bad gender", func(r *models.CalculateRequest) { r.Gender = "robot" }, models.ErrUnknownGender},
		{"bad activity", func(r *models.CalculateRequest) { r.ActivityLevel = "hyper" }, models.ErrUnknownActivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			_, err := UserFromRequest(req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEntryFromRequest_Valid(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	req := models.AddEntryRequest{
		FoodName:        "Apple",
		CaloriesPer100g: 52,
		Quantity:        150,
		MealType:        "breakfast",
		Timestamp:       "2024-01-01T08:00:00Z",
	}

	entry, err := EntryFromRequest(req, now)

	require.NoError(t, err)
	assert.Equal(t, models.MealBreakfast, entry.MealType)
	assert.Equal(t, "Apple", entry.FoodItem.Name)
	assert.Equal(t, 78.0, entry.Calories())
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), entry.Timestamp)
}

func TestEntryFromRequest_DefaultsTimestampToNow(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	req := models.AddEntryRequest{
		FoodName:        "Tuna",
		CaloriesPer100g: 144,
		Quantity:        100,
		MealType:        "lunch",
	}

	entry, err := EntryFromRequest(req, now)

	require.NoError(t, err)
	assert.Equal(t, now, entry.Timestamp)
}

func TestEntryFromRequest_Invalid(t *testing.T) {
	now := time.Now()
	valid := models.AddEntryRequest{
		FoodName: "Apple", CaloriesPer100g: 52, Quantity: 150, MealType: "snack",
	}

	tests := []struct {
		name    string
		mutate  func(*models.AddEntryRequest)
		wantErr error
	}{
		{"empty name", func(r *models.AddEntryRequest) { r.FoodName = "" }, models.ErrEmptyFoodName},
		{"zero calories", func(r *models.AddEntryRequest) { r.CaloriesPer100g = 0 }, models.ErrNonPositiveCalories},
		{"negative quantity", func(r *models.AddEntryRequest) { r.Quantity = -1 }, models.ErrNonPositiveQuantity},
		{"bad meal type", func(r *models.AddEntryRequest) { r.MealType = "brunch" }, models.ErrUnknownMealType},
		{"bad timestamp", func(r *models.AddEntryRequest) { r.Timestamp = "yesterday" }, ErrInvalidTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			_, err := EntryFromRequest(req, now)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
