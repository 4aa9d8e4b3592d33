package domain

// Nutrition is the nutrient vector attached to foods, meals and daily
// intake: calories in kcal, the rest in grams. A comparable value type so
// totals can be checked with plain equality.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
}

// Add returns the elementwise sum of the two vectors.
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fiber:    n.Fiber + o.Fiber,
	}
}

// FoodEntry is one catalog row: the canonical lowercase name and its
// per-100g nutrition.
type FoodEntry struct {
	Name      string    `json:"name"`
	Nutrition Nutrition `json:"nutrition"`
}
