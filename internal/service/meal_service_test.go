package service

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
	"github.com/mealmetrics/meal-metrics-backend/internal/repository"
)

// nutritionClose compares vectors to floating-point tolerance. Summing
// catalog values accumulates representation error, so exact equality is
// only safe for single entries.
func nutritionClose(a, b domain.Nutrition) bool {
	const eps = 1e-9
	return math.Abs(a.Calories-b.Calories) < eps &&
		math.Abs(a.Protein-b.Protein) < eps &&
		math.Abs(a.Carbs-b.Carbs) < eps &&
		math.Abs(a.Fiber-b.Fiber) < eps
}

func newTestStores(t *testing.T) (*repository.FoodRepository, *repository.UserRepository, *repository.MealRepository, string) {
	t.Helper()
	foods := repository.NewFoodRepository()
	users := repository.NewUserRepository()
	meals := repository.NewMealRepository()

	id, err := users.Create(&domain.User{
		Name: "Alice", Age: 30, Weight: 60, Height: 165,
		Gender: "female", ActivityLevel: "moderate", Goal: "maintain",
		RegisteredAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return foods, users, meals, id
}

func TestLogMeal_NormalizesAndAggregates(t *testing.T) {
	foods, users, meals, userID := newTestStores(t)
	svc := NewMealService(foods, users, meals)

	meal, err := svc.LogMeal(domain.LogMealRequest{
		UserID: userID,
		Meal:   "Lunch",
		Items:  []string{"Rice", " dal ", "EGGS"},
	})
	if err != nil {
		t.Fatalf("LogMeal: %v", err)
	}

	if meal.Type != "lunch" {
		t.Errorf("Type = %q, want lunch", meal.Type)
	}
	if !reflect.DeepEqual(meal.Items, []string{"rice", "dal", "eggs"}) {
		t.Errorf("Items = %v, want canonical names", meal.Items)
	}
	want := domain.Nutrition{Calories: 130 + 116 + 155, Protein: 2.7 + 9 + 13, Carbs: 28 + 20 + 1.1, Fiber: 0.4 + 7.9}
	if meal.Nutrition != want {
		t.Errorf("Nutrition = %+v, want %+v", meal.Nutrition, want)
	}
	if meal.ID == "" {
		t.Error("record should carry an id")
	}
	if meal.LoggedAt != time.Now().Format(domain.DateLayout) {
		t.Errorf("LoggedAt should default to today, got %q", meal.LoggedAt)
	}
	if meals.Len() != 1 {
		t.Errorf("ledger length = %d, want 1", meals.Len())
	}
}

func TestLogMeal_UnknownItemsLeaveNoPartialState(t *testing.T) {
	foods, users, meals, userID := newTestStores(t)
	svc := NewMealService(foods, users, meals)

	before, _ := users.GetByID(userID)

	_, err := svc.LogMeal(domain.LogMealRequest{
		UserID: userID,
		Meal:   "dinner",
		Items:  []string{"rice", "pizza", "dal", "sushi"},
	})

	var unknownErr *domain.UnknownFoodItemsError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("err = %v, want UnknownFoodItemsError", err)
	}
	if !reflect.DeepEqual(unknownErr.Items, []string{"pizza", "sushi"}) {
		t.Errorf("unknown items = %v, want the full list", unknownErr.Items)
	}
	if len(unknownErr.Available) != 10 {
		t.Errorf("error should carry a catalog sample, got %d names", len(unknownErr.Available))
	}

	if meals.Len() != 0 {
		t.Error("failed log must not append to the ledger")
	}
	after, _ := users.GetByID(userID)
	if !reflect.DeepEqual(before, after) {
		t.Error("failed log must not mutate the profile")
	}
}

func TestLogMeal_UserNotFound(t *testing.T) {
	foods, users, meals, _ := newTestStores(t)
	svc := NewMealService(foods, users, meals)

	_, err := svc.LogMeal(domain.LogMealRequest{UserID: "user_99", Meal: "lunch", Items: []string{"rice"}})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
	if meals.Len() != 0 {
		t.Error("ledger must stay empty")
	}
}

func TestLogMeal_InvalidMealType(t *testing.T) {
	foods, users, meals, userID := newTestStores(t)
	svc := NewMealService(foods, users, meals)

	_, err := svc.LogMeal(domain.LogMealRequest{UserID: userID, Meal: "brunch", Items: []string{"rice"}})
	if !errors.Is(err, domain.ErrInvalidMealType) {
		t.Errorf("err = %v, want ErrInvalidMealType", err)
	}

	// Meal type matching is case-insensitive.
	if _, err := svc.LogMeal(domain.LogMealRequest{UserID: userID, Meal: "BREAKFAST", Items: []string{"oats"}}); err != nil {
		t.Errorf("uppercase meal type should be accepted: %v", err)
	}
}

func TestLogMeal_RefreshesDailyIntake(t *testing.T) {
	foods, users, meals, userID := newTestStores(t)
	svc := NewMealService(foods, users, meals)

	if _, err := svc.LogMeal(domain.LogMealRequest{UserID: userID, Meal: "lunch", Items: []string{"rice", "dal"}}); err != nil {
		t.Fatalf("LogMeal: %v", err)
	}
	if _, err := svc.LogMeal(domain.LogMealRequest{UserID: userID, Meal: "snack", Items: []string{"banana"}}); err != nil {
		t.Fatalf("LogMeal: %v", err)
	}

	u, _ := users.GetByID(userID)
	want := domain.Nutrition{Calories: 246 + 89, Protein: 11.7 + 1.1, Carbs: 48 + 23, Fiber: 8.3 + 2.6}
	if !nutritionClose(u.NutrientIntake, want) {
		t.Errorf("NutrientIntake = %+v, want %+v", u.NutrientIntake, want)
	}
	if u.LastMealAt == nil {
		t.Error("LastMealAt should be stamped")
	}
}

func TestLogMeal_PastDateDoesNotCountTowardToday(t *testing.T) {
	foods, users, meals, userID := newTestStores(t)
	svc := NewMealService(foods, users, meals)

	if _, err := svc.LogMeal(domain.LogMealRequest{
		UserID:   userID,
		Meal:     "dinner",
		Items:    []string{"biryani"},
		LoggedAt: "2020-01-01",
	}); err != nil {
		t.Fatalf("LogMeal: %v", err)
	}

	u, _ := users.GetByID(userID)
	if u.NutrientIntake != (domain.Nutrition{}) {
		t.Errorf("back-dated meal must not enter today's cache, got %+v", u.NutrientIntake)
	}
	if meals.Len() != 1 {
		t.Error("back-dated meal should still be in the ledger")
	}
}

func TestListMeals(t *testing.T) {
	foods, users, meals, userID := newTestStores(t)
	svc := NewMealService(foods, users, meals)

	svc.LogMeal(domain.LogMealRequest{UserID: userID, Meal: "lunch", Items: []string{"rice"}, LoggedAt: "2026-08-30"})
	svc.LogMeal(domain.LogMealRequest{UserID: userID, Meal: "dinner", Items: []string{"dal"}, LoggedAt: "2026-08-31"})

	all, err := svc.ListMeals(userID, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("ListMeals = %v meals, err %v", len(all), err)
	}

	filtered, err := svc.ListMeals(userID, "2026-08-31")
	if err != nil || len(filtered) != 1 || filtered[0].Type != "dinner" {
		t.Errorf("date filter wrong: %v, err %v", filtered, err)
	}

	if _, err := svc.ListMeals("user_99", ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown user = %v, want ErrUserNotFound", err)
	}
}
