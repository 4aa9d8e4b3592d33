package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	AdminAPIKey      string
	UserAPIKey       string
	JWTSecret        string
	WebhookParser    string
	TelegramBotToken string
	AllowedOrigins   string
}

// Load reads configuration from the environment. An optional .env file is
// merged in first; a missing file is not an error.
func Load(envFile string) *Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("[config] no env file loaded from %s: %v", envFile, err)
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		AdminAPIKey:      getEnv("ADMIN_API_KEY", "ADMIN_API_KEY"),
		UserAPIKey:       getEnv("USER_API_KEY", "SECRET_API_KEY"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		WebhookParser:    getEnv("WEBHOOK_PARSER", "strict"),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		AllowedOrigins:   getEnv("ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
