package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mealmetrics/meal-metrics-backend/internal/auth"
	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
	"github.com/mealmetrics/meal-metrics-backend/internal/middleware"
)

// AuthHandler exchanges a valid key/user-id pair for a short-lived bearer
// token carrying the same identity.
type AuthHandler struct {
	gate      *auth.Gate
	jwtSecret string
}

func NewAuthHandler(gate *auth.Gate, jwtSecret string) *AuthHandler {
	return &AuthHandler{gate: gate, jwtSecret: jwtSecret}
}

func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if h.jwtSecret == "" {
		writeError(w, http.StatusNotImplemented, "token auth is not configured")
		return
	}

	var req domain.TokenRequest
	if r.Body != nil {
		// The body is optional; the claimed id may come from X-User-Id.
		json.NewDecoder(r.Body).Decode(&req)
	}

	claimedID := req.UserID
	if claimedID == "" {
		claimedID = r.Header.Get("X-User-Id")
	}

	identity, err := h.gate.Authenticate(r.Header.Get("X-API-Key"), claimedID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	token, err := middleware.GenerateToken(identity, h.jwtSecret)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	writeJSON(w, http.StatusOK, domain.TokenResponse{Token: token})
}
