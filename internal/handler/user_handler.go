package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/mealmetrics/meal-metrics-backend/internal/auth"
	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
	"github.com/mealmetrics/meal-metrics-backend/internal/middleware"
	"github.com/mealmetrics/meal-metrics-backend/internal/repository"
	"github.com/mealmetrics/meal-metrics-backend/internal/service"
)

var validate = validator.New()

type UserHandler struct {
	users  *repository.UserRepository
	status *service.StatusService
	gate   *auth.Gate
}

func NewUserHandler(users *repository.UserRepository, status *service.StatusService, gate *auth.Gate) *UserHandler {
	return &UserHandler{users: users, status: status, gate: gate}
}

// Register creates a profile. Public endpoint: the id it returns is what the
// caller presents in X-User-Id afterwards.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Gender = strings.ToLower(strings.TrimSpace(req.Gender))
	req.ActivityLevel = strings.ToLower(strings.TrimSpace(req.ActivityLevel))
	req.Goal = strings.ToLower(strings.TrimSpace(req.Goal))
	if req.ActivityLevel == "" {
		req.ActivityLevel = domain.DefaultActivityLevel
	}
	if req.Goal == "" {
		req.Goal = domain.DefaultGoal
	}

	if err := validate.Struct(req); err != nil {
		writeDomainError(w, fmt.Errorf("%w: %v", domain.ErrInvalidProfileField, err))
		return
	}

	user := domain.User{
		Name:          req.Name,
		Email:         req.Email,
		Age:           req.Age,
		Weight:        req.Weight,
		Height:        req.Height,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
		RegisteredAt:  time.Now(),
	}

	id, err := h.users.Create(&user)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	user.ID = id

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"userId":  id,
		"name":    user.Name,
		"user":    user,
	})
}

// GetAll lists every profile. Admin only.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFrom(r.Context())
	if identity.Role != domain.RoleAdmin {
		writeDomainError(w, fmt.Errorf("%w: admin privileges required", domain.ErrForbidden))
		return
	}

	users := h.users.GetAll()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_users": len(users),
		"users":       users,
	})
}

// GetAllPublic lists id and name only, for login pickers. No authentication.
func (h *UserHandler) GetAllPublic(w http.ResponseWriter, r *http.Request) {
	users := h.users.GetAll()
	summaries := make([]domain.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, domain.UserSummary{UserID: u.ID, Name: u.Name})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_users": len(summaries),
		"users":       summaries,
	})
}

// Lookup resolves a registered name to its id and profile.
func (h *UserHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	id, ok := h.users.GetByName(username)
	if !ok {
		writeDomainError(w, fmt.Errorf("%w: %q", domain.ErrUserNotFound, username))
		return
	}
	user, _ := h.users.GetByID(id)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"username":     username,
		"userId":       id,
		"user_profile": user,
	})
}

// GetByID returns one profile; callers may only read themselves unless admin.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if !h.authorize(w, r, userID) {
		return
	}

	user, ok := h.users.GetByID(userID)
	if !ok {
		writeDomainError(w, fmt.Errorf("%w: %q", domain.ErrUserNotFound, userID))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// BMR reports the user's BMR and TDEE.
func (h *UserHandler) BMR(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if !h.authorize(w, r, userID) {
		return
	}

	report, err := h.status.BMRFor(userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *UserHandler) authorize(w http.ResponseWriter, r *http.Request, targetUserID string) bool {
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
