package nutrition

import (
	"math"
	"strconv"
	"strings"
)

// Recommendations are the two textual summaries attached to a status payload.
type Recommendations struct {
	CaloriesVsBMR     string `json:"calories_vs_bmr"`
	ProteinPercentage string `json:"protein_percentage"`
}

// Summarize renders consumed calories against BMR and the protein share of
// calories (4 kcal/g). The denominator is floored at 1 so a zero-calorie day
// reports 0% instead of dividing by zero.
func Summarize(calories, protein, bmr float64) Recommendations {
	pct := protein * 4 / math.Max(calories, 1) * 100
	return Recommendations{
		CaloriesVsBMR:     formatFloat(calories) + " consumed vs " + formatFloat(round2(bmr)) + " BMR",
		ProteinPercentage: formatFloat(round2(pct)) + "% protein intake",
	}
}

// Targets are baseline daily intake recommendations adjusted for the profile.
type Targets struct {
	ProteinGramsPerKg float64 `json:"protein_grams_per_kg"`
	CarbsPercentage   float64 `json:"carbs_percentage"`
	FatPercentage     float64 `json:"fat_percentage"`
	FiberGrams        float64 `json:"fiber_grams"`
}

// TargetsFor starts from WHO-style baselines and adjusts for goal, gender and
// age, mirroring the tracker's advice table.
func TargetsFor(age int, gender, goal string) Targets {
	t := Targets{
		ProteinGramsPerKg: 0.8,
		CarbsPercentage:   50,
		FatPercentage:     30,
		FiberGrams:        25,
	}

	switch goal {
	case "build_muscle":
		t.ProteinGramsPerKg = 1.6
	case "lose_weight":
		t.CarbsPercentage = 40
		t.ProteinGramsPerKg = 1.2
	}

	if strings.ToLower(gender) == "female" {
		t.FiberGrams = 21
	}
	if age > 50 {
		t.ProteinGramsPerKg = 1.0
	}
	return t
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
