package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps a validation failure to its HTTP status. Unknown
// errors are treated as internal: fatal to the request, not the process.
func writeDomainError(w http.ResponseWriter, err error) {
	var unknownFoods *domain.UnknownFoodItemsError
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrDuplicateUserName):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &unknownFoods),
		errors.Is(err, domain.ErrInvalidMealType),
		errors.Is(err, domain.ErrInvalidMessageFormat),
		errors.Is(err, domain.ErrNoFoodDetected),
		errors.Is(err, domain.ErrInvalidProfileField):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
