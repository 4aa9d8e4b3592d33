package nutrition

import (
	"fmt"
	"strings"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
)

// BMR computes basal metabolic rate in kcal/day with the Mifflin-St Jeor
// equation. For gender "other" it returns the arithmetic mean of the male and
// female formulas: there is no third formula, averaging is the chosen policy.
func BMR(gender string, weightKg, heightCm float64, ageYears int) (float64, error) {
	age := float64(ageYears)
	switch strings.ToLower(gender) {
	case domain.GenderMale:
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*age, nil
	case domain.GenderFemale:
		return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*age, nil
	case domain.GenderOther:
		male := 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*age
		female := 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*age
		return (male + female) / 2, nil
	default:
		return 0, fmt.Errorf("gender must be male, female or other, got %q", gender)
	}
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// TDEE scales a BMR by the activity multiplier. Unknown levels fall back to
// sedentary.
func TDEE(bmr float64, activityLevel string) float64 {
	m, ok := activityMultipliers[strings.ToLower(activityLevel)]
	if !ok {
		m = 1.2
	}
	return bmr * m
}
