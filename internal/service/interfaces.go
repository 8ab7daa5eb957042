package service

import (
	"context"
	"time"

	"github.com/caltrack/caltrack/models"
)

// EnergyService computes metabolic figures from user biometrics.
type EnergyService interface {
	Calculate(ctx context.Context, user models.User) models.EnergyResult
}

// IntakeService records food entries and aggregates them per calendar day.
type IntakeService interface {
	AddEntry(ctx context.Context, entry models.FoodEntry) (models.AddEntryResponse, error)
	DailySummary(ctx context.Context, day time.Time) (models.DailySummary, error)
}

// CatalogService serves the food reference catalog.
type CatalogService interface {
	SearchFood(ctx context.Context, query string) ([]models.CatalogFood, error)
	GetFood(ctx context.Context, name string) (models.CatalogFood, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// BMRCalculator is the metabolic formula behind EnergyService. Separated so
// the formula can be swapped without touching the service plumbing.
type BMRCalculator interface {
	BMR(user models.User) float64
}
