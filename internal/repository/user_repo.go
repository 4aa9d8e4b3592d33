package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
)

// UserRepository is the in-memory user directory. Ids are assigned from a
// counter under the write lock, so concurrent registrations never collide and
// ids are never reused. The name index is kept unique: a second registration
// under an existing name is rejected instead of shadowing the first.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[string]*domain.User
	order  []string
	byName map[string]string
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[string]*domain.User),
		byName: make(map[string]string),
	}
}

// Create assigns the next sequential id, stores the profile and indexes the
// name. Returns domain.ErrDuplicateUserName if the name is already taken.
func (r *UserRepository) Create(u *domain.User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[u.Name]; exists {
		return "", fmt.Errorf("%w: %q", domain.ErrDuplicateUserName, u.Name)
	}

	r.nextID++
	id := fmt.Sprintf("user_%d", r.nextID)

	stored := *u
	stored.ID = id
	r.users[id] = &stored
	r.order = append(r.order, id)
	r.byName[u.Name] = id
	return id, nil
}

// GetByID returns a copy of the profile, or false when the id is unknown.
func (r *UserRepository) GetByID(id string) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return domain.User{}, false
	}
	return *u, true
}

// GetByName resolves a registered name to its user id.
func (r *UserRepository) GetByName(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	return id, ok
}

// GetByIdentifier tries the id space, then the name index, then a linear scan
// over email addresses (case-insensitive). First match wins.
func (r *UserRepository) GetByIdentifier(identifier string) (string, domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[identifier]; ok {
		return identifier, *u, true
	}
	if id, ok := r.byName[identifier]; ok {
		return id, *r.users[id], true
	}
	for _, id := range r.order {
		u := r.users[id]
		if u.Email != "" && strings.EqualFold(u.Email, identifier) {
			return id, *u, true
		}
	}
	return "", domain.User{}, false
}

// GetAll returns all profiles in registration order.
func (r *UserRepository) GetAll() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.users[id])
	}
	return out
}

// RecordMeal stamps the user's last-meal time and replaces the cached
// today's-intake vector.
func (r *UserRepository) RecordMeal(id string, at time.Time, intake domain.Nutrition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	t := at
	u.LastMealAt = &t
	u.NutrientIntake = intake
	return nil
}

func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
