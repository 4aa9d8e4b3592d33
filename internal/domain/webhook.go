package domain

type WebhookMessage struct {
	Message string `json:"message" validate:"required,min=1"`
}

// WebhookResponse is always returned with HTTP 200; Status carries the
// success/error outcome so chat integrations can relay it verbatim.
type WebhookResponse struct {
	Status      string          `json:"status"`
	Message     string          `json:"message"`
	WebhookData *WebhookMessage `json:"webhook_data,omitempty"`
	Result      *Meal           `json:"result,omitempty"`
}
