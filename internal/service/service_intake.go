package service

import (
	"context"
	"time"

	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/store"
	"github.com/caltrack/caltrack/models"
)

type intakeService struct {
	intakeRepository store.IntakeRepository

	logger *logger.Logger
}

// NewIntakeService constructs an [IntakeService] over the given repository.
func NewIntakeService(intakeRepository store.IntakeRepository, logger *logger.Logger) IntakeService {
	return &intakeService{
		intakeRepository: intakeRepository,
		logger:           logger,
	}
}

// AddEntry persists a validated entry and reports its id together with the
// derived calorie value, rounded to one decimal place.
func (s *intakeService) AddEntry(ctx context.Context, entry models.FoodEntry) (models.AddEntryResponse, error) {
	log := logger.FromContext(ctx)

	id, err := s.intakeRepository.Append(ctx, entry)
	if err != nil {
		return models.AddEntryResponse{}, err
	}

	log.Info().
		Int64("id", id).
		Str("food_name", entry.FoodItem.Name).
		Str("meal_type", string(entry.MealType)).
		Msg("food entry logged")

	return models.AddEntryResponse{
		ID:       id,
		Calories: round1(entry.Calories()),
	}, nil
}

// DailySummary aggregates every entry logged on the calendar day of day.
// The meal breakdown always carries all four meal types, zero when the day
// has no entries of that kind.
func (s *intakeService) DailySummary(ctx context.Context, day time.Time) (models.DailySummary, error) {
	entries, err := s.intakeRepository.ListByDay(ctx, day)
	if err != nil {
		return models.DailySummary{}, err
	}

	breakdown := make(map[string]float64, len(models.MealTypes))
	for _, mt := range models.MealTypes {
		breakdown[string(mt)] = 0
	}

	var total float64
	views := make([]models.EntryView, 0, len(entries))
	for _, e := range entries {
		calories := e.Calories()
		total += calories
		breakdown[string(e.MealType)] += calories

		views = append(views, models.EntryView{
			ID:              e.ID,
			FoodName:        e.FoodItem.Name,
			CaloriesPer100g: e.FoodItem.CaloriesPer100g,
			QuantityGrams:   e.FoodItem.QuantityGrams,
			MealType:        string(e.MealType),
			Calories:        round1(calories),
			Timestamp:       e.Timestamp.Format(time.RFC3339),
		})
	}

	for mt, sum := range breakdown {
		breakdown[mt] = round1(sum)
	}

	return models.DailySummary{
		Date:          day.Format(time.DateOnly),
		TotalCalories: round1(total),
		MealBreakdown: breakdown,
		EntryCount:    len(entries),
		Entries:       views,
	}, nil
}
