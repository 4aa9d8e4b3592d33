package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
	"github.com/mealmetrics/meal-metrics-backend/internal/service"
)

// TelegramHandler processes bot updates. It always answers 200 {"ok":true}
// so Telegram never retries; outcomes go back to the chat as bot replies,
// which are sent fire-and-forget.
type TelegramHandler struct {
	meals    *service.MealService
	telegram *service.TelegramService
}

func NewTelegramHandler(meals *service.MealService, telegram *service.TelegramService) *TelegramHandler {
	return &TelegramHandler{meals: meals, telegram: telegram}
}

func (h *TelegramHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var update domain.TelegramUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Printf("[telegram] malformed update: %v", err)
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		return
	}

	if update.Message != nil {
		h.handleMessage(update.Message)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *TelegramHandler) handleMessage(msg *domain.TelegramMessage) {
	text := strings.TrimSpace(msg.Text)
	switch {
	case strings.HasPrefix(text, "/log"):
		h.handleLog(msg.Chat.ID, text)
	default:
		h.telegram.Reply(msg.Chat.ID, helpText)
	}
}

func (h *TelegramHandler) handleLog(chatID int64, text string) {
	cmd, err := service.ParseLogCommand(text)
	if err != nil {
		h.telegram.Reply(chatID, formatHelp)
		return
	}

	meal, err := h.meals.LogMeal(domain.LogMealRequest{
		UserID: cmd.UserID,
		Meal:   cmd.MealType,
		Items:  cmd.Items,
		Source: "telegram",
	})
	if err != nil {
		h.telegram.Reply(chatID, replyForError(err, cmd))
		return
	}

	h.telegram.Reply(chatID, fmt.Sprintf(
		"Meal logged successfully for %s!\n\nMeal: %s\nCalories: %g kcal\nProtein: %gg\nCarbs: %gg\nFiber: %gg",
		cmd.UserID, meal.Type,
		meal.Nutrition.Calories, meal.Nutrition.Protein, meal.Nutrition.Carbs, meal.Nutrition.Fiber,
	))
}

func replyForError(err error, cmd service.LogCommand) string {
	var unknownFoods *domain.UnknownFoodItemsError
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return fmt.Sprintf("User '%s' not found. Register first via POST /api/v1/users/register, then retry:\n/log %s %s: %s",
			cmd.UserID, cmd.UserID, cmd.MealType, strings.Join(cmd.Items, ", "))
	case errors.As(err, &unknownFoods):
		return fmt.Sprintf("%s\n\nGet the full food list: GET /api/v1/nutrition/foods", err.Error())
	case errors.Is(err, domain.ErrInvalidMealType):
		return fmt.Sprintf("Invalid meal type '%s'. Valid meal types: %s\n\nUse /help for the correct format",
			cmd.MealType, strings.Join(domain.MealTypes, ", "))
	default:
		return fmt.Sprintf("Error: %v\n\nUse /help for the correct format", err)
	}
}

const formatHelp = `Incorrect format!

Correct format:
/log [user_id] [meal_type]: [food_items]

Examples:
/log user_1 breakfast: oats, banana, milk
/log user_2 lunch: rice, dal

Use /help for more details`

const helpText = `Meal Tracker Bot Commands

Log meals for existing users:
/log user_1 breakfast: oats, banana, milk
/log user_2 lunch: rice, dal

Format: /log [user_id] [meal_type]: [food_items]
Meal types: breakfast, lunch, dinner, snack
Separate food items with commas.`
