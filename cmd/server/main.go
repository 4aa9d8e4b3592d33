package main

import (
	"log"
	"net/http"

	"github.com/alecthomas/kong"
	"github.com/gorilla/mux"

	"github.com/mealmetrics/meal-metrics-backend/internal/auth"
	"github.com/mealmetrics/meal-metrics-backend/internal/config"
	"github.com/mealmetrics/meal-metrics-backend/internal/handler"
	"github.com/mealmetrics/meal-metrics-backend/internal/middleware"
	"github.com/mealmetrics/meal-metrics-backend/internal/repository"
	"github.com/mealmetrics/meal-metrics-backend/internal/service"
)

var cli struct {
	Port    string `help:"Listen port, overrides PORT." default:""`
	EnvFile string `help:"Path to an optional .env file." default:".env" type:"path"`
	Parser  string `help:"Webhook parser strategy (strict or detect), overrides WEBHOOK_PARSER." default:""`
}

func main() {
	kong.Parse(&cli,
		kong.Name("meal-metrics-server"),
		kong.Description("Nutrition tracking backend: user profiles, meal logging, BMR status."),
		kong.UsageOnError(),
	)

	cfg := config.Load(cli.EnvFile)
	if cli.Port != "" {
		cfg.Port = cli.Port
	}
	if cli.Parser != "" {
		cfg.WebhookParser = cli.Parser
	}
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET not set, bearer token auth disabled")
	}

	foodRepo := repository.NewFoodRepository()
	userRepo := repository.NewUserRepository()
	mealRepo := repository.NewMealRepository()

	gate := auth.NewGate(cfg.AdminAPIKey, cfg.UserAPIKey)
	mealService := service.NewMealService(foodRepo, userRepo, mealRepo)
	statusService := service.NewStatusService(userRepo, mealRepo)
	telegramService := service.NewTelegramService(cfg.TelegramBotToken)

	parser, err := service.NewParser(cfg.WebhookParser, foodRepo)
	if err != nil {
		log.Fatalf("invalid webhook parser config: %v", err)
	}

	authHandler := handler.NewAuthHandler(gate, cfg.JWTSecret)
	userHandler := handler.NewUserHandler(userRepo, statusService, gate)
	mealHandler := handler.NewMealHandler(mealService, userRepo, gate)
	nutritionHandler := handler.NewNutritionHandler(statusService, foodRepo, gate)
	webhookHandler := handler.NewWebhookHandler(parser, mealService, userRepo, gate)
	telegramHandler := handler.NewTelegramHandler(mealService, telegramService)

	r := mux.NewRouter()

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
			next.ServeHTTP(w, r)
		})
	})

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet, http.MethodOptions)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public endpoints: registration, login picker, catalog, token exchange
	// and the Telegram webhook (Telegram cannot send custom headers).
	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/users/public", userHandler.GetAllPublic).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/nutrition/foods", nutritionHandler.Foods).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/auth/token", authHandler.Token).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/telegram/webhook", telegramHandler.Webhook).Methods(http.MethodPost, http.MethodOptions)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.IdentityMiddleware(gate, cfg.JWTSecret))

	protected.HandleFunc("/users", userHandler.GetAll).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/users/lookup/{username}", userHandler.Lookup).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/users/bmr/{userId}", userHandler.BMR).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/users/{userId}", userHandler.GetByID).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/meals/log", mealHandler.Log).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/meals/{userId}", mealHandler.GetByUser).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/nutrition/status/{userId}", nutritionHandler.Status).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/nutrition/recommendations/{userId}", nutritionHandler.Recommendations).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/webhook", webhookHandler.Handle).Methods(http.MethodPost, http.MethodOptions)

	addr := ":" + cfg.Port
	log.Printf("server starting on %s (webhook parser: %s)", addr, cfg.WebhookParser)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
