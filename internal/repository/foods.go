package repository

import "github.com/mealmetrics/meal-metrics-backend/internal/domain"

// Catalog seed, nutrients per 100g. Order matters: the "available foods"
// sample shown on unknown-item errors takes the first entries of this list.
var foodSeed = []domain.FoodEntry{
	// Grains & cereals
	{Name: "rice", Nutrition: domain.Nutrition{Calories: 130, Protein: 2.7, Carbs: 28, Fiber: 0.4}},
	{Name: "bread", Nutrition: domain.Nutrition{Calories: 265, Protein: 9, Carbs: 49, Fiber: 2.7}},
	{Name: "oats", Nutrition: domain.Nutrition{Calories: 389, Protein: 16.9, Carbs: 66.3, Fiber: 10.6}},
	{Name: "quinoa", Nutrition: domain.Nutrition{Calories: 368, Protein: 14.1, Carbs: 64.2, Fiber: 7}},
	{Name: "pasta", Nutrition: domain.Nutrition{Calories: 131, Protein: 5, Carbs: 25, Fiber: 1.8}},
	{Name: "wheat_flour", Nutrition: domain.Nutrition{Calories: 364, Protein: 10.3, Carbs: 76, Fiber: 2.7}},

	// Proteins
	{Name: "chicken_breast", Nutrition: domain.Nutrition{Calories: 165, Protein: 31, Carbs: 0, Fiber: 0}},
	{Name: "eggs", Nutrition: domain.Nutrition{Calories: 155, Protein: 13, Carbs: 1.1, Fiber: 0}},
	{Name: "fish", Nutrition: domain.Nutrition{Calories: 206, Protein: 22, Carbs: 0, Fiber: 0}},
	{Name: "tofu", Nutrition: domain.Nutrition{Calories: 76, Protein: 8, Carbs: 1.9, Fiber: 0.3}},
	{Name: "lentils", Nutrition: domain.Nutrition{Calories: 116, Protein: 9, Carbs: 20, Fiber: 7.9}},
	{Name: "chickpeas", Nutrition: domain.Nutrition{Calories: 164, Protein: 8.9, Carbs: 27.4, Fiber: 7.6}},
	{Name: "paneer", Nutrition: domain.Nutrition{Calories: 265, Protein: 18.3, Carbs: 1.2, Fiber: 0}},
	{Name: "mutton", Nutrition: domain.Nutrition{Calories: 294, Protein: 25, Carbs: 0, Fiber: 0}},
	{Name: "beef", Nutrition: domain.Nutrition{Calories: 250, Protein: 26, Carbs: 0, Fiber: 0}},

	// Vegetables
	{Name: "spinach", Nutrition: domain.Nutrition{Calories: 23, Protein: 2.9, Carbs: 3.6, Fiber: 2.2}},
	{Name: "broccoli", Nutrition: domain.Nutrition{Calories: 34, Protein: 2.8, Carbs: 7, Fiber: 2.6}},
	{Name: "carrots", Nutrition: domain.Nutrition{Calories: 41, Protein: 0.9, Carbs: 10, Fiber: 2.8}},
	{Name: "tomatoes", Nutrition: domain.Nutrition{Calories: 18, Protein: 0.9, Carbs: 3.9, Fiber: 1.2}},
	{Name: "onions", Nutrition: domain.Nutrition{Calories: 40, Protein: 1.1, Carbs: 9.3, Fiber: 1.7}},
	{Name: "potatoes", Nutrition: domain.Nutrition{Calories: 77, Protein: 2, Carbs: 17, Fiber: 2.2}},
	{Name: "sweet_potato", Nutrition: domain.Nutrition{Calories: 86, Protein: 1.6, Carbs: 20, Fiber: 3}},

	// Fruits
	{Name: "banana", Nutrition: domain.Nutrition{Calories: 89, Protein: 1.1, Carbs: 23, Fiber: 2.6}},
	{Name: "apple", Nutrition: domain.Nutrition{Calories: 52, Protein: 0.3, Carbs: 14, Fiber: 2.4}},
	{Name: "orange", Nutrition: domain.Nutrition{Calories: 47, Protein: 0.9, Carbs: 12, Fiber: 2.4}},
	{Name: "mango", Nutrition: domain.Nutrition{Calories: 60, Protein: 0.8, Carbs: 15, Fiber: 1.6}},
	{Name: "grapes", Nutrition: domain.Nutrition{Calories: 62, Protein: 0.6, Carbs: 16, Fiber: 0.9}},

	// Dairy
	{Name: "milk", Nutrition: domain.Nutrition{Calories: 42, Protein: 3.4, Carbs: 5, Fiber: 0}},
	{Name: "yogurt", Nutrition: domain.Nutrition{Calories: 59, Protein: 10, Carbs: 3.6, Fiber: 0}},
	{Name: "cheese", Nutrition: domain.Nutrition{Calories: 113, Protein: 25, Carbs: 1, Fiber: 0}},

	// Nuts & seeds
	{Name: "almonds", Nutrition: domain.Nutrition{Calories: 579, Protein: 21.2, Carbs: 21.6, Fiber: 12.5}},
	{Name: "walnuts", Nutrition: domain.Nutrition{Calories: 654, Protein: 15.2, Carbs: 13.7, Fiber: 6.7}},
	{Name: "peanuts", Nutrition: domain.Nutrition{Calories: 567, Protein: 25.8, Carbs: 16.1, Fiber: 8.5}},

	// Indian foods
	{Name: "dal", Nutrition: domain.Nutrition{Calories: 116, Protein: 9, Carbs: 20, Fiber: 7.9}},
	{Name: "roti", Nutrition: domain.Nutrition{Calories: 297, Protein: 11, Carbs: 51, Fiber: 11}},
	{Name: "dosa", Nutrition: domain.Nutrition{Calories: 168, Protein: 4, Carbs: 29, Fiber: 1}},
	{Name: "idli", Nutrition: domain.Nutrition{Calories: 58, Protein: 2, Carbs: 12, Fiber: 0.3}},
	{Name: "sambar", Nutrition: domain.Nutrition{Calories: 85, Protein: 4.5, Carbs: 12, Fiber: 3.5}},
	{Name: "rajma", Nutrition: domain.Nutrition{Calories: 127, Protein: 8.7, Carbs: 22.8, Fiber: 6.4}},
	{Name: "chole", Nutrition: domain.Nutrition{Calories: 164, Protein: 8.9, Carbs: 27.4, Fiber: 7.6}},
	{Name: "biryani", Nutrition: domain.Nutrition{Calories: 200, Protein: 8, Carbs: 35, Fiber: 2}},
	{Name: "upma", Nutrition: domain.Nutrition{Calories: 158, Protein: 4.5, Carbs: 28, Fiber: 2}},
}
