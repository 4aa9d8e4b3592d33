package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failures surfaced to callers. All of them are synchronous and
// non-retryable; none is ever raised after a store mutation.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidMealType      = errors.New("invalid meal type")
	ErrInvalidMessageFormat = errors.New("invalid message format")
	ErrNoFoodDetected       = errors.New("no recognizable food items found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrDuplicateUserName    = errors.New("user name already registered")
	ErrInvalidProfileField  = errors.New("invalid profile field")
)

// UnknownFoodItemsError reports every item of a submission that did not
// resolve against the catalog, plus a sample of valid names so the caller can
// self-correct in one round trip.
type UnknownFoodItemsError struct {
	Items     []string `json:"unknown_items"`
	Available []string `json:"available_foods"`
}

func (e *UnknownFoodItemsError) Error() string {
	return fmt.Sprintf("unknown food items: [%s]. Available foods: %s... (use GET /nutrition/foods for full list)",
		strings.Join(e.Items, ", "), strings.Join(e.Available, ", "))
}
