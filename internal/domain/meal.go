package domain

// DateLayout is the wire format for meal dates. Dates are compared as strings,
// so there is no range filtering anywhere.
const DateLayout = "2006-01-02"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealTypes lists the accepted meal categories in breakdown order.
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// ValidMealType reports whether t (already lowercased) is a known category.
func ValidMealType(t string) bool {
	for _, m := range MealTypes {
		if t == m {
			return true
		}
	}
	return false
}

// Meal is one ledger record. Items hold canonical catalog names and Nutrition
// the totals computed at log time; neither is ever rewritten.
type Meal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"meal"`
	Items     []string  `json:"items"`
	LoggedAt  string    `json:"loggedAt"`
	Nutrition Nutrition `json:"nutrition"`
	Source    string    `json:"source,omitempty"`
}

type LogMealRequest struct {
	UserID   string   `json:"userId" validate:"required"`
	Meal     string   `json:"meal" validate:"required"`
	Items    []string `json:"items" validate:"required,min=1"`
	LoggedAt string   `json:"loggedAt" validate:"omitempty,datetime=2006-01-02"`
	Source   string   `json:"-"`
}
