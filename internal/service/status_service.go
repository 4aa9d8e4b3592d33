package service

import (
	"fmt"
	"math"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
	"github.com/mealmetrics/meal-metrics-backend/internal/nutrition"
	"github.com/mealmetrics/meal-metrics-backend/internal/repository"
)

// allTime is the date label when no filter is given.
const allTime = "All time"

type MealBreakdown struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
	Snack     int `json:"snack"`
}

type MealsLogged struct {
	Total     int           `json:"total"`
	Breakdown MealBreakdown `json:"breakdown"`
}

type Status struct {
	UserID          string                    `json:"userId"`
	Username        string                    `json:"username"`
	Date            string                    `json:"date"`
	BMR             float64                   `json:"bmr"`
	TDEE            float64                   `json:"tdee"`
	NutrientIntake  domain.Nutrition          `json:"nutrient_intake"`
	MealsLogged     MealsLogged               `json:"meals_logged"`
	Recommendations nutrition.Recommendations `json:"recommendations"`
}

type BMRReport struct {
	UserID   string      `json:"userId"`
	Username string      `json:"username"`
	BMR      float64     `json:"bmr"`
	TDEE     float64     `json:"tdee"`
	Profile  domain.User `json:"user_profile"`
}

type TargetsReport struct {
	UserID   string            `json:"userId"`
	Username string            `json:"username"`
	Goal     string            `json:"goal"`
	Targets  nutrition.Targets `json:"targets"`
}

// StatusService answers read-only nutrition queries against the shared
// stores.
type StatusService struct {
	users *repository.UserRepository
	meals *repository.MealRepository
}

func NewStatusService(users *repository.UserRepository, meals *repository.MealRepository) *StatusService {
	return &StatusService{users: users, meals: meals}
}

// Status aggregates a user's logged meals (optionally for one exact date),
// tallies meal types and derives the recommendation strings. Records with an
// unrecognized type still count toward the totals, just not the breakdown.
func (s *StatusService) Status(userID, onDate string) (Status, error) {
	user, ok := s.users.GetByID(userID)
	if !ok {
		return Status{}, fmt.Errorf("%w: %q", domain.ErrUserNotFound, userID)
	}

	var meals []domain.Meal
	if onDate != "" {
		meals = s.meals.GetByUserAndDate(userID, onDate)
	} else {
		meals = s.meals.GetByUser(userID)
	}

	totals := nutrition.SumMeals(meals)

	var breakdown MealBreakdown
	for _, m := range meals {
		switch m.Type {
		case domain.MealBreakfast:
			breakdown.Breakfast++
		case domain.MealLunch:
			breakdown.Lunch++
		case domain.MealDinner:
			breakdown.Dinner++
		case domain.MealSnack:
			breakdown.Snack++
		}
	}

	bmr, err := nutrition.BMR(user.Gender, user.Weight, user.Height, user.Age)
	if err != nil {
		// Gender was validated at registration; reaching this is a bug in
		// the caller, not user input.
		return Status{}, fmt.Errorf("computing BMR for %s: %w", userID, err)
	}

	date := onDate
	if date == "" {
		date = allTime
	}

	return Status{
		UserID:          userID,
		Username:        user.Name,
		Date:            date,
		BMR:             round2(bmr),
		TDEE:            round2(nutrition.TDEE(bmr, user.ActivityLevel)),
		NutrientIntake:  totals,
		MealsLogged:     MealsLogged{Total: len(meals), Breakdown: breakdown},
		Recommendations: nutrition.Summarize(totals.Calories, totals.Protein, bmr),
	}, nil
}

// BMRFor computes the BMR/TDEE report for one user.
func (s *StatusService) BMRFor(userID string) (BMRReport, error) {
	user, ok := s.users.GetByID(userID)
	if !ok {
		return BMRReport{}, fmt.Errorf("%w: %q", domain.ErrUserNotFound, userID)
	}

	bmr, err := nutrition.BMR(user.Gender, user.Weight, user.Height, user.Age)
	if err != nil {
		return BMRReport{}, fmt.Errorf("computing BMR for %s: %w", userID, err)
	}

	return BMRReport{
		UserID:   userID,
		Username: user.Name,
		BMR:      round2(bmr),
		TDEE:     round2(nutrition.TDEE(bmr, user.ActivityLevel)),
		Profile:  user,
	}, nil
}

// TargetsFor returns goal-adjusted daily intake recommendations.
func (s *StatusService) TargetsFor(userID string) (TargetsReport, error) {
	user, ok := s.users.GetByID(userID)
	if !ok {
		return TargetsReport{}, fmt.Errorf("%w: %q", domain.ErrUserNotFound, userID)
	}
	return TargetsReport{
		UserID:   userID,
		Username: user.Name,
		Goal:     user.Goal,
		Targets:  nutrition.TargetsFor(user.Age, user.Gender, user.Goal),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
