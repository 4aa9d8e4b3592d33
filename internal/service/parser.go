package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mealmetrics/meal-metrics-backend/internal/domain"
	"github.com/mealmetrics/meal-metrics-backend/internal/repository"
)

// ParsedMeal is the outcome of webhook text parsing: a meal type and the raw
// item list, ready for the logging pipeline.
type ParsedMeal struct {
	MealType string
	Items    []string
}

// MessageParser extracts a meal from free text. The strategy is fixed per
// entry point at wiring time, never chosen per message.
type MessageParser interface {
	Parse(message string) (ParsedMeal, error)
}

const (
	ParserStrict = "strict"
	ParserDetect = "detect"
)

// NewParser builds the parser named by mode.
func NewParser(mode string, foods *repository.FoodRepository) (MessageParser, error) {
	switch mode {
	case ParserStrict, "":
		return StrictParser{}, nil
	case ParserDetect:
		return DetectParser{foods: foods}, nil
	default:
		return nil, fmt.Errorf("unknown webhook parser %q", mode)
	}
}

const strictFormat = "'log <meal>: <item1>, <item2>, ...'"

var strictPattern = regexp.MustCompile(`^log (\w+): (.+)`)

// StrictParser accepts only the exact command grammar. The keyword "log" is
// case-sensitive and the meal type is a single word before the colon.
type StrictParser struct{}

func (StrictParser) Parse(message string) (ParsedMeal, error) {
	m := strictPattern.FindStringSubmatch(message)
	if m == nil {
		return ParsedMeal{}, fmt.Errorf("%w. Expected format: %s", domain.ErrInvalidMessageFormat, strictFormat)
	}

	var items []string
	for _, item := range strings.Split(m[2], ",") {
		items = append(items, strings.TrimSpace(item))
	}
	return ParsedMeal{MealType: m[1], Items: items}, nil
}

// DetectParser lowercases the whole message and treats every catalog name
// found as a substring as a logged item. Meal type defaults to snack.
type DetectParser struct {
	foods *repository.FoodRepository
}

func (p DetectParser) Parse(message string) (ParsedMeal, error) {
	text := strings.ToLower(strings.TrimSpace(message))

	var detected []string
	for _, name := range p.foods.Names() {
		if strings.Contains(text, name) {
			detected = append(detected, name)
		}
	}
	if len(detected) == 0 {
		return ParsedMeal{}, fmt.Errorf("%w in message: %q. Try mentioning specific food names", domain.ErrNoFoodDetected, message)
	}
	return ParsedMeal{MealType: domain.MealSnack, Items: detected}, nil
}
