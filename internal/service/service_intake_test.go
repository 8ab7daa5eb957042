package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/models"
)

type fakeIntakeRepository struct {
	appendID  int64
	appendErr error
	appended  []models.FoodEntry

	entries []models.FoodEntry
	listErr error
}

func (f *fakeIntakeRepository) Append(_ context.Context, entry models.FoodEntry) (int64, error) {
	if f.appendErr != nil {
		return 0, f.appendErr
	}
	f.appended = append(f.appended, entry)
	return f.appendID, nil
}

func (f *fakeIntakeRepository) ListByDay(_ context.Context, _ time.Time) ([]models.FoodEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func mustEntry(t *testing.T, mealType models.MealType, name string, caloriesPer100g, quantity float64, ts time.Time) models.FoodEntry {
	t.Helper()
	item, err := models.NewFoodItem(name, caloriesPer100g, quantity)
	require.NoError(t, err)
	entry, err := models.NewFoodEntry(mealType, item, ts)
	require.NoError(t, err)
	return entry
}

func TestAddEntry_ReturnsIDAndCalories(t *testing.T) {
	repo := &fakeIntakeRepository{appendID: 12}
	svc := NewIntakeService(repo, logger.Nop())

	ts := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	entry := mustEntry(t, models.MealBreakfast, "Apple", 52, 150, ts)

	got, err := svc.AddEntry(context.Background(), entry)

	require.NoError(t, err)
	assert.Equal(t, models.AddEntryResponse{ID: 12, Calories: 78.0}, got)
	require.Len(t, repo.appended, 1)
	assert.Equal(t, entry, repo.appended[0])
}

func TestAddEntry_RepositoryError(t *testing.T) {
	wantErr := errors.New("database is locked")
	repo := &fakeIntakeRepository{appendErr: wantErr}
	svc := NewIntakeService(repo, logger.Nop())

	entry := mustEntry(t, models.MealLunch, "Tuna", 144, 100, time.Now())

	_, err := svc.AddEntry(context.Background(), entry)

	assert.ErrorIs(t, err, wantErr)
}

func TestDailySummary_SingleEntry(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeIntakeRepository{
		entries: []models.FoodEntry{
			mustEntry(t, models.MealBreakfast, "Apple", 52, 150, day.Add(8*time.Hour)),
		},
	}
	repo.entries[0].ID = 1
	svc := NewIntakeService(repo, logger.Nop())

	got, err := svc.DailySummary(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got.Date)
	assert.Equal(t, 78.0, got.TotalCalories)
	assert.Equal(t, 1, got.EntryCount)
	assert.Equal(t, map[string]float64{
		"breakfast": 78.0,
		"lunch":     0,
		"dinner":    0,
		"snack":     0,
	}, got.MealBreakdown)

	require.Len(t, got.Entries, 1)
	assert.Equal(t, models.EntryView{
		ID:              1,
		FoodName:        "Apple",
		CaloriesPer100g: 52,
		QuantityGrams:   150,
		MealType:        "breakfast",
		Calories:        78.0,
		Timestamp:       "2024-01-01T08:00:00Z",
	}, got.Entries[0])
}

func TestDailySummary_BreakdownSumsToTotal(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeIntakeRepository{
		entries: []models.FoodEntry{
			mustEntry(t, models.MealBreakfast, "Oats", 389, 50, day.Add(8*time.Hour)),
			mustEntry(t, models.MealLunch, "Chicken Breast", 165, 200, day.Add(13*time.Hour)),
			mustEntry(t, models.MealLunch, "White Rice", 130, 150, day.Add(13*time.Hour)),
			mustEntry(t, models.MealSnack, "Almonds", 579, 30, day.Add(16*time.Hour)),
		},
	}
	svc := NewIntakeService(repo, logger.Nop())

	got, err := svc.DailySummary(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, 4, got.EntryCount)

	var sum float64
	for _, v := range got.MealBreakdown {
		sum += v
	}
	assert.InDelta(t, got.TotalCalories, sum, 0.2)
	assert.Equal(t, 194.5, got.MealBreakdown["breakfast"])
	assert.Equal(t, 525.0, got.MealBreakdown["lunch"])
	assert.Equal(t, 0.0, got.MealBreakdown["dinner"])
	assert.Equal(t, 173.7, got.MealBreakdown["snack"])
}

func TestDailySummary_EmptyDay(t *testing.T) {
	repo := &fakeIntakeRepository{}
	svc := NewIntakeService(repo, logger.Nop())

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	got, err := svc.DailySummary(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, 0.0, got.TotalCalories)
	assert.Equal(t, 0, got.EntryCount)
	assert.Empty(t, got.Entries)
	assert.Len(t, got.MealBreakdown, 4)
	for _, mt := range models.MealTypes {
		assert.Contains(t, got.MealBreakdown, string(mt))
	}
}

func TestDailySummary_RepositoryError(t *testing.T) {
	wantErr := errors.New("connection reset")
	repo := &fakeIntakeRepository{listErr: wantErr}
	svc := NewIntakeService(repo, logger.Nop())

	_, err := svc.DailySummary(context.Background(), time.Now())

	assert.ErrorIs(t, err, wantErr)
}
