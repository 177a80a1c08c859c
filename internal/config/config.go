package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	GinMode       string
	MongoURI      string
	MongoDatabase string

	RabbitMQURI      string
	RabbitMQExchange string

	JWTSecret string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	AllowOrigins []string

	// GradeFillBlanksByText switches fill-blanks grading from the historical
	// blank-id comparison to per-blank text comparison.
	GradeFillBlanksByText bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:                  getEnvOrDefault("PORT", "8080"),
		GinMode:               getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:              getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:         getEnvOrDefault("MONGO_DATABASE", "readdash"),
		RabbitMQURI:           os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange:      os.Getenv("RABBITMQ_EXCHANGE"),
		JWTSecret:             getEnvOrDefault("JWT_SECRET", "readdash-dev-secret"),
		LLMBaseURL:            getEnvOrDefault("LLM_BASE_URL", "http://localhost:11434/v1"),
		LLMAPIKey:             os.Getenv("LLM_API_KEY"),
		LLMModel:              getEnvOrDefault("LLM_MODEL", "qwen3:1.7b"),
		AllowOrigins:          strings.Split(getEnvOrDefault("ALLOW_ORIGINS", "http://localhost:3000"), ","),
		GradeFillBlanksByText: os.Getenv("GRADE_FILL_BLANKS_BY_TEXT") == "true",
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
