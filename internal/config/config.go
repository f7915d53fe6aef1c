package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	MongoURI       string
	MongoDatabase  string
	RabbitMQURI    string
	EventExchange  string
	LLMBaseURL     string
	LLMAPIKey      string
	LLMModel       string
	LLMProvider    string
	LLMMaxRetries  int
	JWTSecret      string
	ServiceName    string
	ServiceVersion string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		GinMode:        getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:       getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnvOrDefault("MONGO_DATABASE", "interview_service"),
		RabbitMQURI:    getEnvOrDefault("RABBITMQ_URI", ""),
		EventExchange:  getEnvOrDefault("RABBITMQ_EXCHANGE", "interview.events"),
		LLMBaseURL:     getEnvOrDefault("BASE_URL", "http://localhost:11434/v1"),
		LLMAPIKey:      getEnvOrDefault("API_KEY", ""),
		LLMModel:       getEnvOrDefault("MODEL", "qwen3:1.7b"),
		LLMProvider:    getEnvOrDefault("PROVIDER", "ollama"),
		LLMMaxRetries:  getEnvIntOrDefault("LLM_MAX_RETRIES", 3),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", "your-jwt-secret-key"),
		ServiceName:    getEnvOrDefault("SERVICE_NAME", "interview-service"),
		ServiceVersion: getEnvOrDefault("SERVICE_VERSION", "1.0.0"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
