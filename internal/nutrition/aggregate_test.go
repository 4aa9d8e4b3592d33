package nutrition

import (
	"testing"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
)

var (
	rice = domain.FoodEntry{Name: "rice", Nutrition: domain.Nutrition{Calories: 130, Protein: 2.7, Carbs: 28, Fiber: 0.4}}
	dal  = domain.FoodEntry{Name: "dal", Nutrition: domain.Nutrition{Calories: 116, Protein: 9, Carbs: 20, Fiber: 7.9}}
	eggs = domain.FoodEntry{Name: "eggs", Nutrition: domain.Nutrition{Calories: 155, Protein: 13, Carbs: 1.1, Fiber: 0}}
)

func TestSumFoods(t *testing.T) {
	got := SumFoods([]domain.FoodEntry{rice, dal})
	want := domain.Nutrition{Calories: 246, Protein: 11.7, Carbs: 48, Fiber: 8.3}
	if got != want {
		t.Errorf("SumFoods(rice, dal) = %+v, want %+v", got, want)
	}
}

func TestSumFoods_Commutative(t *testing.T) {
	a := SumFoods([]domain.FoodEntry{rice, dal, eggs})
	b := SumFoods([]domain.FoodEntry{eggs, rice, dal})
	if a != b {
		t.Errorf("aggregation is order dependent: %+v vs %+v", a, b)
	}
}

func TestSumFoods_Empty(t *testing.T) {
	if got := SumFoods(nil); got != (domain.Nutrition{}) {
		t.Errorf("SumFoods(nil) = %+v, want zero vector", got)
	}
}

func TestSumMeals_UsesStoredVectors(t *testing.T) {
	meals := []domain.Meal{
		{Nutrition: domain.Nutrition{Calories: 246, Protein: 11.7, Carbs: 48, Fiber: 8.3}},
		{Nutrition: domain.Nutrition{Calories: 155, Protein: 13, Carbs: 1.1}},
	}
	got := SumMeals(meals)
	want := domain.Nutrition{Calories: 401, Protein: 24.7, Carbs: 49.1, Fiber: 8.3}
	if got != want {
		t.Errorf("SumMeals = %+v, want %+v", got, want)
	}
}
