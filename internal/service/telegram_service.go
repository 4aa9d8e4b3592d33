package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
)

// LogCommand is a parsed "/log <user> <meal>: <items>" Telegram command.
type LogCommand struct {
	UserID   string
	MealType string
	Items    []string
}

// ParseLogCommand splits a /log command into its parts. The meal type and
// items are validated later by the logging pipeline; this only enforces the
// command shape.
func ParseLogCommand(text string) (LogCommand, error) {
	head, itemsPart, found := strings.Cut(text, ":")
	if !found {
		return LogCommand{}, fmt.Errorf("%w: missing ':' separator", domain.ErrInvalidMessageFormat)
	}

	fields := strings.Fields(strings.TrimSpace(strings.TrimPrefix(head, "/log")))
	if len(fields) != 2 {
		return LogCommand{}, fmt.Errorf("%w: expected '/log <user_id> <meal_type>: <items>'", domain.ErrInvalidMessageFormat)
	}

	var items []string
	for _, item := range strings.Split(itemsPart, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return LogCommand{}, fmt.Errorf("%w: no food items provided", domain.ErrInvalidMessageFormat)
	}

	return LogCommand{
		UserID:   fields[0],
		MealType: strings.ToLower(fields[1]),
		Items:    items,
	}, nil
}

// TelegramService sends replies through the Telegram Bot API. Delivery is
// fire-and-forget from the caller's perspective; the meal-logging path never
// waits on it.
type TelegramService struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewTelegramService(token string) *TelegramService {
	return &TelegramService{
		token:   token,
		baseURL: "https://api.telegram.org",
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a bot token is configured.
func (s *TelegramService) Enabled() bool {
	return s.token != ""
}

// SendMessage posts a sendMessage call for the chat.
func (s *TelegramService) SendMessage(chatID int64, text string) error {
	if s.token == "" {
		return fmt.Errorf("telegram bot token not configured")
	}

	payload := map[string]interface{}{
		"chat_id": chatID,
		"text":    text,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.baseURL, s.token)
	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram api error %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// Reply sends on a goroutine and only logs failures.
func (s *TelegramService) Reply(chatID int64, text string) {
	go func() {
		if err := s.SendMessage(chatID, text); err != nil {
			log.Printf("[telegram] failed to send reply to chat %d: %v", chatID, err)
		}
	}()
}
