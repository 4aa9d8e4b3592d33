package nutrition

import "github.com/mealmetrics/meal-metrics-backend/internal/domain"

// SumFoods adds the per-100g vectors of the given catalog entries. Inputs are
// assumed valid: unresolved names must have been rejected before this point.
func SumFoods(entries []domain.FoodEntry) domain.Nutrition {
	var total domain.Nutrition
	for _, e := range entries {
		total = total.Add(e.Nutrition)
	}
	return total
}

// SumMeals adds the vectors stored on the records at log time, so aggregation
// never re-touches the catalog.
func SumMeals(meals []domain.Meal) domain.Nutrition {
	var total domain.Nutrition
	for _, m := range meals {
		total = total.Add(m.Nutrition)
	}
	return total
}
