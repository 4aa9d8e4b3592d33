package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
	"github.com/mealmetrics/meal-metrics-backend/internal/nutrition"
	"github.com/mealmetrics/meal-metrics-backend/internal/repository"
)

// sampleSize is how many catalog names an unknown-item error suggests.
const sampleSize = 10

// MealService runs the meal-logging pipeline: validate, aggregate, append,
// refresh the user's daily-intake cache. The mutex serializes the whole
// sequence so two concurrent logs for one user cannot interleave the cache
// recomputation.
type MealService struct {
	mu    sync.Mutex
	foods *repository.FoodRepository
	users *repository.UserRepository
	meals *repository.MealRepository

	now func() time.Time
}

func NewMealService(foods *repository.FoodRepository, users *repository.UserRepository, meals *repository.MealRepository) *MealService {
	return &MealService{foods: foods, users: users, meals: meals, now: time.Now}
}

// LogMeal validates the submission and, only if everything checks out,
// appends a record and updates the owner's profile. On any error the ledger
// and directory are untouched.
func (s *MealService) LogMeal(req domain.LogMealRequest) (domain.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.GetByID(req.UserID); !ok {
		return domain.Meal{}, fmt.Errorf("%w: %q. Please register first", domain.ErrUserNotFound, req.UserID)
	}

	mealType := strings.ToLower(strings.TrimSpace(req.Meal))
	if !domain.ValidMealType(mealType) {
		return domain.Meal{}, fmt.Errorf("%w: %q, must be one of %s",
			domain.ErrInvalidMealType, req.Meal, strings.Join(domain.MealTypes, ", "))
	}

	loggedAt := req.LoggedAt
	if loggedAt == "" {
		loggedAt = s.now().Format(domain.DateLayout)
	}

	var entries []domain.FoodEntry
	var unknown []string
	for _, item := range req.Items {
		entry, ok := s.foods.Lookup(item)
		if !ok {
			unknown = append(unknown, item)
			continue
		}
		entries = append(entries, entry)
	}
	if len(unknown) > 0 {
		return domain.Meal{}, &domain.UnknownFoodItemsError{
			Items:     unknown,
			Available: s.foods.Sample(sampleSize),
		}
	}

	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = e.Name
	}

	meal := domain.Meal{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Type:      mealType,
		Items:     items,
		LoggedAt:  loggedAt,
		Nutrition: nutrition.SumFoods(entries),
		Source:    req.Source,
	}
	s.meals.Append(meal)

	if err := s.refreshIntake(req.UserID); err != nil {
		// The user existed when validation ran and profiles are never
		// deleted; if the directory disagrees, fail the request.
		return domain.Meal{}, err
	}
	return meal, nil
}

// refreshIntake recomputes the cached today's-intake vector from the ledger.
func (s *MealService) refreshIntake(userID string) error {
	now := s.now()
	today := now.Format(domain.DateLayout)
	intake := nutrition.SumMeals(s.meals.GetByUserAndDate(userID, today))
	return s.users.RecordMeal(userID, now, intake)
}

// ListMeals returns a user's records, optionally filtered to an exact date.
func (s *MealService) ListMeals(userID, onDate string) ([]domain.Meal, error) {
	if _, ok := s.users.GetByID(userID); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUserNotFound, userID)
	}
	if onDate != "" {
		return s.meals.GetByUserAndDate(userID, onDate), nil
	}
	return s.meals.GetByUser(userID), nil
}
