package repository

import (
	"strings"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
)

// FoodRepository is the read-only food catalog. It is built once at startup
// and never mutated, so it needs no locking.
type FoodRepository struct {
	entries map[string]domain.FoodEntry
	index   map[string]string // lowercase name -> canonical name
	names   []string          // seed order
}

func NewFoodRepository() *FoodRepository {
	r := &FoodRepository{
		entries: make(map[string]domain.FoodEntry, len(foodSeed)),
		index:   make(map[string]string, len(foodSeed)),
		names:   make([]string, 0, len(foodSeed)),
	}
	for _, e := range foodSeed {
		r.entries[e.Name] = e
		r.index[strings.ToLower(e.Name)] = e.Name
		r.names = append(r.names, e.Name)
	}
	return r
}

// Lookup resolves a free-text food name case-insensitively. The returned
// entry carries the canonical name; looking that up again is a fixed point.
func (r *FoodRepository) Lookup(name string) (domain.FoodEntry, bool) {
	canonical, ok := r.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.FoodEntry{}, false
	}
	return r.entries[canonical], true
}

// Names returns all canonical names in seed order.
func (r *FoodRepository) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Sample returns up to n canonical names for error messages.
func (r *FoodRepository) Sample(n int) []string {
	if n > len(r.names) {
		n = len(r.names)
	}
	out := make([]string, n)
	copy(out, r.names[:n])
	return out
}

// All returns name -> per-100g nutrition for the whole catalog.
func (r *FoodRepository) All() map[string]domain.Nutrition {
	out := make(map[string]domain.Nutrition, len(r.entries))
	for name, e := range r.entries {
		out[name] = e.Nutrition
	}
	return out
}

func (r *FoodRepository) Len() int {
	return len(r.names)
}
