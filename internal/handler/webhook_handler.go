package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mealmetrics/meal-metrics-backend/internal/auth"
	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
	"github.com/mealmetrics/meal-metrics-backend/internal/middleware"
	"github.com/mealmetrics/meal-metrics-backend/internal/repository"
	"github.com/mealmetrics/meal-metrics-backend/internal/service"
)

// WebhookHandler turns free-text chat messages into meal logs. The parsing
// strategy is fixed when the handler is built.
type WebhookHandler struct {
	parser service.MessageParser
	meals  *service.MealService
	users  *repository.UserRepository
	gate   *auth.Gate
}

func NewWebhookHandler(parser service.MessageParser, meals *service.MealService, users *repository.UserRepository, gate *auth.Gate) *WebhookHandler {
	return &WebhookHandler{parser: parser, meals: meals, users: users, gate: gate}
}

// Handle parses the message and feeds the result into the logging pipeline.
// The response is always 200 with a status field, so chat integrations can
// relay outcomes without interpreting HTTP codes.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var msg domain.WebhookMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil || msg.Message == "" {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		writeDomainError(w, domain.ErrUnauthorized)
		return
	}

	parsed, err := h.parser.Parse(msg.Message)
	if err != nil {
		writeJSON(w, http.StatusOK, domain.WebhookResponse{
			Status:      "error",
			Message:     err.Error(),
			WebhookData: &msg,
		})
		return
	}

	// The sender identifier may be an id, a name or an email. The resolved
	// id replaces the raw identifier before the permission check, so a user
	// identifying by name is still logging for themselves.
	userID, _, found := h.users.GetByIdentifier(identity.UserID)
	if !found {
		writeJSON(w, http.StatusOK, domain.WebhookResponse{
			Status:  "error",
			Message: fmt.Sprintf("User not found with identifier: %s. Please register first.", identity.UserID),
		})
		return
	}
	identity.UserID = userID

	if !h.gate.Authorize(identity, userID) {
		writeJSON(w, http.StatusOK, domain.WebhookResponse{
			Status:  "error",
			Message: "You don't have permission to log meals for this user.",
		})
		return
	}

	meal, err := h.meals.LogMeal(domain.LogMealRequest{
		UserID: userID,
		Meal:   parsed.MealType,
		Items:  parsed.Items,
		Source: "webhook",
	})
	if err != nil {
		writeJSON(w, http.StatusOK, domain.WebhookResponse{
			Status:      "error",
			Message:     err.Error(),
			WebhookData: &msg,
		})
		return
	}
	writeJSON(w, http.StatusOK, domain.WebhookResponse{
		Status:      "success",
		Message:     "Meal logged successfully",
		WebhookData: &msg,
		Result:      &meal,
	})
}
