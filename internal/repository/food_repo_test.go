package repository

import (
	"testing"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
)

func TestFoodRepository_Lookup(t *testing.T) {
	repo := NewFoodRepository()

	cases := []struct {
		input string
		want  string
	}{
		{"rice", "rice"},
		{"Rice", "rice"},
		{"  RICE  ", "rice"},
		{"Chicken_Breast", "chicken_breast"},
		{" dal ", "dal"},
	}
	for _, c := range cases {
		entry, ok := repo.Lookup(c.input)
		if !ok {
			t.Errorf("Lookup(%q) not found", c.input)
			continue
		}
		if entry.Name != c.want {
			t.Errorf("Lookup(%q).Name = %q, want %q", c.input, entry.Name, c.want)
		}
	}

	if _, ok := repo.Lookup("pizza"); ok {
		t.Error("Lookup(pizza) should not resolve")
	}
}

func TestFoodRepository_LookupIsFixedPoint(t *testing.T) {
	repo := NewFoodRepository()
	first, ok := repo.Lookup("EGGS")
	if !ok {
		t.Fatal("eggs not in catalog")
	}
	second, ok := repo.Lookup(first.Name)
	if !ok || second != first {
		t.Errorf("lookup of canonical name changed result: %+v vs %+v", second, first)
	}
}

func TestFoodRepository_SeedValues(t *testing.T) {
	repo := NewFoodRepository()

	if repo.Len() != 42 {
		t.Errorf("catalog has %d entries, want 42", repo.Len())
	}

	rice, _ := repo.Lookup("rice")
	if rice.Nutrition != (domain.Nutrition{Calories: 130, Protein: 2.7, Carbs: 28, Fiber: 0.4}) {
		t.Errorf("rice nutrition = %+v", rice.Nutrition)
	}
	dal, _ := repo.Lookup("dal")
	if dal.Nutrition != (domain.Nutrition{Calories: 116, Protein: 9, Carbs: 20, Fiber: 7.9}) {
		t.Errorf("dal nutrition = %+v", dal.Nutrition)
	}
}

func TestFoodRepository_Sample(t *testing.T) {
	repo := NewFoodRepository()

	sample := repo.Sample(10)
	if len(sample) != 10 {
		t.Fatalf("Sample(10) returned %d names", len(sample))
	}
	if sample[0] != "rice" {
		t.Errorf("sample should start with the first seed entry, got %q", sample[0])
	}

	all := repo.Sample(1000)
	if len(all) != repo.Len() {
		t.Errorf("oversized sample should return the whole catalog, got %d", len(all))
	}
}
