package models

import "errors"

// Gender selects the Mifflin-St Jeor sex constant.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel is a named TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtreme   ActivityLevel = "extreme"
)

// ActivityMultipliers maps activity levels to their TDEE multiplier.
// Single source of truth for valid levels — also used for input validation.
var ActivityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityVery:      1.725,
	ActivityExtreme:   1.9,
}

var (
	ErrAgeOutOfRange    = errors.New("age must be between 1 and 120")
	ErrWeightOutOfRange = errors.New("weight must be between 1 and 500 kg")
	ErrHeightOutOfRange = errors.New("height must be between 1 and 300 cm")
	ErrUnknownGender    = errors.New("gender must be \"male\" or \"female\"")
	ErrUnknownActivity  = errors.New("unknown activity level")
)

// User holds the biometrics needed for a single calculation request.
// It is constructed per request and never persisted.
type User struct {
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	WeightKG      float64       `json:"weight"`
	HeightCM      float64       `json:"height"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// NewUser validates all range constraints and returns a User.
// Construction fails on the first violated constraint.
func NewUser(age int, gender Gender, weightKG, heightCM float64, level ActivityLevel) (User, error) {
	if age <= 0 || age > 120 {
		return User{}, ErrAgeOutOfRange
	}
	if gender != GenderMale && gender != GenderFemale {
		return User{}, ErrUnknownGender
	}
	if weightKG <= 0 || weightKG > 500 {
		return User{}, ErrWeightOutOfRange
	}
	if heightCM <= 0 || heightCM > 300 {
		return User{}, ErrHeightOutOfRange
	}
	if _, ok := ActivityMultipliers[level]; !ok {
		return User{}, ErrUnknownActivity
	}

	return User{
		Age:           age,
		Gender:        gender,
		WeightKG:      weightKG,
		HeightCM:      heightCM,
		ActivityLevel: level,
	}, nil
}

// Multiplier returns the TDEE multiplier for the user's activity level.
func (u User) Multiplier() float64 {
	return ActivityMultipliers[u.ActivityLevel]
}
