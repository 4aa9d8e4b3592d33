package repository

import (
	"sync"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
)

// MealRepository is the append-only meal ledger. Records are returned in
// insertion order; no update or delete exists.
type MealRepository struct {
	mu    sync.RWMutex
	meals []domain.Meal
}

func NewMealRepository() *MealRepository {
	return &MealRepository{}
}

func (r *MealRepository) Append(m domain.Meal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meals = append(r.meals, m)
}

func (r *MealRepository) GetByUser(userID string) []domain.Meal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Meal
	for _, m := range r.meals {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out
}

// GetByUserAndDate filters by user and exact date string equality.
func (r *MealRepository) GetByUserAndDate(userID, date string) []domain.Meal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Meal
	for _, m := range r.meals {
		if m.UserID == userID && m.LoggedAt == date {
			out = append(out, m)
		}
	}
	return out
}

func (r *MealRepository) GetAll() []domain.Meal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Meal, len(r.meals))
	copy(out, r.meals)
	return out
}

func (r *MealRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.meals)
}
