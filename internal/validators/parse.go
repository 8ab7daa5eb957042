// Package validators translates raw request input into validated domain
// values. It owns the string-to-enum parsing and timestamp formats shared by
// the JSON API and the HTML form handlers, so both surfaces accept exactly
// the same input.
package validators

import (
	"fmt"
	"strings"
	"time"

	"github.com/caltrack/caltrack/models"
)

// timestampLayouts are accepted entry timestamp formats, tried in order.
// RFC 3339 first, then the second-less variants produced by
// datetime-local form inputs.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseGender parses a case-insensitive gender label.
func ParseGender(s string) (models.Gender, error) {
	switch models.Gender(strings.ToLower(strings.TrimSpace(s))) {
	case models.GenderMale:
		return models.GenderMale, nil
	case models.GenderFemale:
		return models.GenderFemale, nil
	}
	return "", fmt.Errorf("%w: %q", models.ErrUnknownGender, s)
}

// ParseActivityLevel parses a case-insensitive activity level label.
func ParseActivityLevel(s string) (models.ActivityLevel, error) {
	level := models.ActivityLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := models.ActivityMultipliers[level]; !ok {
		return "", fmt.Errorf("%w: %q", models.ErrUnknownActivity, s)
	}
	return level, nil
}

// ParseMealType parses a case-insensitive meal type label.
func ParseMealType(s string) (models.MealType, error) {
	mealType := models.MealType(strings.ToLower(strings.TrimSpace(s)))
	if !models.ValidMealType(mealType) {
		return "", fmt.Errorf("%w: %q", models.ErrUnknownMealType, s)
	}
	return mealType, nil
}

// ParseTimestamp parses an entry timestamp. An empty string yields now, so
// callers log "right now" entries without supplying a timestamp. Layouts
// without a zone are interpreted in now's location.
func ParseTimestamp(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			return ts, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// ParseDate parses a YYYY-MM-DD day selector. An empty string yields today,
// taken from now.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}

	day, err := time.ParseInLocation(time.DateOnly, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return day, nil
}
