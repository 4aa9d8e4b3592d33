package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mealmetrics/meal-metrics-backend/internal/auth"
	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
	"github.com/mealmetrics/meal-metrics-backend/internal/middleware"
	"github.com/mealmetrics/meal-metrics-backend/internal/repository"
	"github.com/mealmetrics/meal-metrics-backend/internal/service"
)

type MealHandler struct {
	meals *service.MealService
	users *repository.UserRepository
	gate  *auth.Gate
}

func NewMealHandler(meals *service.MealService, users *repository.UserRepository, gate *auth.Gate) *MealHandler {
	return &MealHandler{meals: meals, users: users, gate: gate}
}

// Log records a meal through the logging pipeline.
func (h *MealHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req domain.LogMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !h.authorize(w, r, req.UserID) {
		return
	}

	meal, err := h.meals.LogMeal(req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	user, _ := h.users.GetByID(req.UserID)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "Meal logged successfully",
		"meal_details": meal,
		"username":     user.Name,
	})
}

// GetByUser lists a user's meals, optionally filtered by ?on_date=YYYY-MM-DD.
func (h *MealHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if !h.authorize(w, r, userID) {
		return
	}

	meals, err := h.meals.ListMeals(userID, r.URL.Query().Get("on_date"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if meals == nil {
		meals = []domain.Meal{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"userId": userID,
		"meals":  meals,
	})
}

func (h *MealHandler) authorize(w http.ResponseWriter, r *http.Request, targetUserID string) bool {
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
