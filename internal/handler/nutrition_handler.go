package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mealmetrics/meal-metrics-backend/internal/auth"
	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
	"github.com/mealmetrics/meal-metrics-backend/internal/middleware"
	"github.com/mealmetrics/meal-metrics-backend/internal/repository"
	"github.com/mealmetrics/meal-metrics-backend/internal/service"
)

type NutritionHandler struct {
	status *service.StatusService
	foods  *repository.FoodRepository
	gate   *auth.Gate
}

func NewNutritionHandler(status *service.StatusService, foods *repository.FoodRepository, gate *auth.Gate) *NutritionHandler {
	return &NutritionHandler{status: status, foods: foods, gate: gate}
}

// Status reports intake totals, meal tallies, BMR/TDEE and recommendations.
func (h *NutritionHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if !h.authorize(w, r, userID) {
		return
	}

	status, err := h.status.Status(userID, r.URL.Query().Get("on_date"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Recommendations returns goal-adjusted intake targets.
func (h *NutritionHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if !h.authorize(w, r, userID) {
		return
	}

	report, err := h.status.TargetsFor(userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Foods lists the whole catalog with coarse category buckets. Public.
func (h *NutritionHandler) Foods(w http.ResponseWriter, r *http.Request) {
	names := h.foods.Names()

	categories := map[string][]string{
		"grains":     filterContains(names, "rice", "roti", "bread", "oats", "pasta"),
		"proteins":   filterContains(names, "dal", "chicken", "fish", "paneer", "egg"),
		"vegetables": filterContains(names, "tomato", "onion", "potato", "carrot", "spinach"),
		"fruits":     filterContains(names, "apple", "banana", "orange"),
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_foods": h.foods.Len(),
		"foods":       h.foods.All(),
		"categories":  categories,
	})
}

func filterContains(names []string, substrings ...string) []string {
	var out []string
	for _, name := range names {
		for _, sub := range substrings {
			if strings.Contains(name, sub) {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

func (h *NutritionHandler) authorize(w http.ResponseWriter, r *http.Request, targetUserID string) bool {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return false
	}
	if !h.gate.Authorize(identity, targetUserID) {
		writeDomainError(w, fmt.Errorf("%w: cannot access user %q", domain.ErrForbidden, targetUserID))
		return false
	}
	return true
}
