package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	APIKey      string `validate:"required"`
	APIBaseURL  string
	HTTPTimeout time.Duration
	ListenAddr  string
	NATSUrl     string
	NATSEnabled bool
}

func Load() (*Config, error) {
	// .env is optional; the real environment wins either way
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      strings.TrimSpace(os.Getenv("YOUTUBE_DATA_API_KEY")),
		APIBaseURL:  getEnv("YOUTUBE_API_BASE_URL", "https://www.googleapis.com/youtube/v3/videos"),
		HTTPTimeout: getDurationEnv("HTTP_TIMEOUT", "30s"),
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		NATSUrl:     getEnv("NATS_URL", "nats://localhost:4222"),
		NATSEnabled: getBoolEnv("NATS_ENABLED", false),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("YOUTUBE_DATA_API_KEY is required: set it in your environment")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue string) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
