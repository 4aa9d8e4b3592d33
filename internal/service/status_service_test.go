package service

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
	"github.com/mealmetrics/meal-metrics-backend/internal/repository"
)

func TestStatus_RegisterLogQueryScenario(t *testing.T) {
	foods, users, meals, userID := newTestStores(t)
	mealSvc := NewMealService(foods, users, meals)
	statusSvc := NewStatusService(users, meals)

	if userID != "user_1" {
		t.Fatalf("first registration got id %q, want user_1", userID)
	}

	if _, err := mealSvc.LogMeal(domain.LogMealRequest{
		UserID: "user_1", Meal: "Lunch", Items: []string{"rice", "dal"},
	}); err != nil {
		t.Fatalf("LogMeal: %v", err)
	}

	status, err := statusSvc.Status("user_1", "")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	wantIntake := domain.Nutrition{Calories: 246, Protein: 11.7, Carbs: 48, Fiber: 8.3}
	if status.NutrientIntake != wantIntake {
		t.Errorf("NutrientIntake = %+v, want %+v", status.NutrientIntake, wantIntake)
	}

	wantBMR := 447.593 + 9.247*60 + 3.098*165 - 4.330*30
	if math.Abs(status.BMR-math.Round(wantBMR*100)/100) > 1e-9 {
		t.Errorf("BMR = %v, want %v", status.BMR, wantBMR)
	}

	if status.MealsLogged.Total != 1 || status.MealsLogged.Breakdown.Lunch != 1 {
		t.Errorf("MealsLogged = %+v", status.MealsLogged)
	}
	if status.Date != "All time" {
		t.Errorf("Date = %q, want All time", status.Date)
	}
	if status.Username != "Alice" {
		t.Errorf("Username = %q", status.Username)
	}
}

func TestStatus_ZeroMealsDay(t *testing.T) {
	_, users, meals, userID := newTestStores(t)
	statusSvc := NewStatusService(users, meals)

	status, err := statusSvc.Status(userID, "2026-01-01")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	if status.NutrientIntake != (domain.Nutrition{}) {
		t.Errorf("intake should be all zero, got %+v", status.NutrientIntake)
	}
	if status.Recommendations.ProteinPercentage != "0% protein intake" {
		t.Errorf("ProteinPercentage = %q, want 0%% (division guard)", status.Recommendations.ProteinPercentage)
	}
	if status.MealsLogged.Total != 0 {
		t.Errorf("Total = %d", status.MealsLogged.Total)
	}
	if status.Date != "2026-01-01" {
		t.Errorf("Date = %q", status.Date)
	}
}

func TestStatus_DateFilterIsExactMatch(t *testing.T) {
	foods, users, meals, userID := newTestStores(t)
	mealSvc := NewMealService(foods, users, meals)
	statusSvc := NewStatusService(users, meals)

	mealSvc.LogMeal(domain.LogMealRequest{UserID: userID, Meal: "breakfast", Items: []string{"oats"}, LoggedAt: "2026-08-30"})
	mealSvc.LogMeal(domain.LogMealRequest{UserID: userID, Meal: "lunch", Items: []string{"rice"}, LoggedAt: "2026-08-31"})

	status, err := statusSvc.Status(userID, "2026-08-30")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.MealsLogged.Total != 1 || status.MealsLogged.Breakdown.Breakfast != 1 {
		t.Errorf("MealsLogged = %+v", status.MealsLogged)
	}
	if status.NutrientIntake.Calories != 389 {
		t.Errorf("Calories = %v, want 389", status.NutrientIntake.Calories)
	}
}

func TestStatus_UnrecognizedMealTypeExcludedFromTally(t *testing.T) {
	_, users, meals, userID := newTestStores(t)
	statusSvc := NewStatusService(users, meals)

	// A record with a bad type can only enter the ledger by bypassing the
	// pipeline; the tally skips it but the totals keep it.
	meals.Append(domain.Meal{UserID: userID, Type: "brunch", LoggedAt: "2026-08-31",
		Nutrition: domain.Nutrition{Calories: 100}})

	status, err := statusSvc.Status(userID, "")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.MealsLogged.Total != 1 {
		t.Errorf("Total = %d, want 1", status.MealsLogged.Total)
	}
	if b := status.MealsLogged.Breakdown; b.Breakfast+b.Lunch+b.Dinner+b.Snack != 0 {
		t.Errorf("breakdown should exclude unrecognized types: %+v", b)
	}
	if status.NutrientIntake.Calories != 100 {
		t.Errorf("totals should still include the record, got %v", status.NutrientIntake.Calories)
	}
}

func TestStatus_OtherGenderAveragesBMR(t *testing.T) {
	users := repository.NewUserRepository()
	meals := repository.NewMealRepository()
	statusSvc := NewStatusService(users, meals)

	id, _ := users.Create(&domain.User{
		Name: "Robin", Age: 25, Weight: 70, Height: 175,
		Gender: "other", ActivityLevel: "light", Goal: "maintain",
		RegisteredAt: time.Now(),
	})

	status, err := statusSvc.Status(id, "")
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	male := 88.362 + 13.397*70 + 4.799*175 - 5.677*25
	female := 447.593 + 9.247*70 + 3.098*175 - 4.330*25
	want := math.Round((male + female) / 2 * 100) / 100
	if math.Abs(status.BMR-want) > 1e-9 {
		t.Errorf("BMR = %v, want averaged %v", status.BMR, want)
	}
}

func TestStatus_UserNotFound(t *testing.T) {
	users := repository.NewUserRepository()
	meals := repository.NewMealRepository()
	statusSvc := NewStatusService(users, meals)

	if _, err := statusSvc.Status("user_1", ""); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestBMRFor_IncludesTDEE(t *testing.T) {
	_, users, meals, userID := newTestStores(t)
	statusSvc := NewStatusService(users, meals)

	report, err := statusSvc.BMRFor(userID)
	if err != nil {
		t.Fatalf("BMRFor: %v", err)
	}

	bmr := 447.593 + 9.247*60 + 3.098*165 - 4.330*30
	wantTDEE := math.Round(bmr*1.55*100) / 100 // moderate
	if math.Abs(report.TDEE-wantTDEE) > 1e-9 {
		t.Errorf("TDEE = %v, want %v", report.TDEE, wantTDEE)
	}
	if report.Username != "Alice" || report.Profile.ID != userID {
		t.Errorf("report = %+v", report)
	}
}

func TestTargetsFor_Service(t *testing.T) {
	_, users, meals, userID := newTestStores(t)
	statusSvc := NewStatusService(users, meals)

	report, err := statusSvc.TargetsFor(userID)
	if err != nil {
		t.Fatalf("TargetsFor: %v", err)
	}
	if report.Goal != "maintain" || report.Targets.FiberGrams != 21 {
		t.Errorf("report = %+v (Alice is female, fiber target 21)", report)
	}
}
