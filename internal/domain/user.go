package domain

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	DefaultActivityLevel = "moderate"
	DefaultGoal          = "maintain"
)

type User struct {
	ID             string     `json:"userId"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Age            int        `json:"age"`
	Weight         float64    `json:"weight"`
	Height         float64    `json:"height"`
	Gender         string     `json:"gender"`
	ActivityLevel  string     `json:"activity_level"`
	Goal           string     `json:"goal"`
	RegisteredAt   time.Time  `json:"registeredAt"`
	LastMealAt     *time.Time `json:"lastMealAt,omitempty"`
	NutrientIntake Nutrition  `json:"nutrient_intake"`
}

// RegisterRequest carries the registration payload. Enum fields are lowercased
// before validation; activity level and goal fall back to the defaults above.
type RegisterRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=50"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Age           int     `json:"age" validate:"required,gt=0,lte=120"`
	Weight        float64 `json:"weight" validate:"required,gt=0,lte=500"`
	Height        float64 `json:"height" validate:"required,gt=0,lte=300"`
	Gender        string  `json:"gender" validate:"required,oneof=male female other"`
	ActivityLevel string  `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	Goal          string  `json:"goal" validate:"omitempty,oneof=lose_weight gain_weight maintain build_muscle"`
}

// UserSummary is the public listing shape: enough to pick an account, nothing
// more.
type UserSummary struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}
