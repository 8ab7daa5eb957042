package service

import (
	"context"
	"math"

	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/models"
)

// CalorieAdjustment is the fixed daily deficit/surplus applied to TDEE for
// the weight loss and weight gain targets.
const CalorieAdjustment = 500.0

// mifflinStJeor implements the Mifflin-St Jeor BMR equation:
//
//	BMR = 10*weight + 6.25*height - 5*age + 5    (male)
//	BMR = 10*weight + 6.25*height - 5*age - 161  (female)
type mifflinStJeor struct{}

// NewMifflinStJeor returns the Mifflin-St Jeor formula.
func NewMifflinStJeor() BMRCalculator {
	return mifflinStJeor{}
}

func (mifflinStJeor) BMR(user models.User) float64 {
	bmr := 10*user.WeightKG + 6.25*user.HeightCM - 5*float64(user.Age)
	if user.Gender == models.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

type energyService struct {
	calculator BMRCalculator

	logger *logger.Logger
}

// NewEnergyService constructs an [EnergyService] over the given formula.
func NewEnergyService(calculator BMRCalculator, logger *logger.Logger) EnergyService {
	return &energyService{
		calculator: calculator,
		logger:     logger,
	}
}

// Calculate derives BMR, TDEE and the two weight targets for user. The user
// is assumed to be validated at construction. Intermediate figures stay at
// full precision; only the returned values are rounded to one decimal place.
func (s *energyService) Calculate(ctx context.Context, user models.User) models.EnergyResult {
	log := logger.FromContext(ctx)

	bmr := s.calculator.BMR(user)
	tdee := bmr * user.Multiplier()

	result := models.EnergyResult{
		BMR:        round1(bmr),
		TDEE:       round1(tdee),
		WeightLoss: round1(tdee - CalorieAdjustment),
		WeightGain: round1(tdee + CalorieAdjustment),
	}

	log.Debug().
		Float64("bmr", result.BMR).
		Float64("tdee", result.TDEE).
		Str("activity_level", string(user.ActivityLevel)).
		Msg("energy calculated")

	return result
}

// round1 rounds to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
