package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	APIBaseURL      string
	APITimeout      time.Duration
	SessionStore    string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	SessionSecret   string
	SessionTTL      time.Duration
	SessionSweep    time.Duration
	CookieSecure    bool
	SearchDebounce  time.Duration
	PerPage         int
	NotificationTTL time.Duration
	LogLevel        string
	SwaggerHost     string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:8000/api"),
		APITimeout:      getEnvDuration("API_TIMEOUT", 0),
		SessionStore:    getEnv("SESSION_STORE", "redis"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		SessionSecret:   getEnv("SESSION_SECRET", "change-me"),
		SessionTTL:      getEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionSweep:    getEnvDuration("SESSION_SWEEP_INTERVAL", time.Minute),
		CookieSecure:    getEnvBool("COOKIE_SECURE", false),
		SearchDebounce:  getEnvDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		PerPage:         getEnvInt("PER_PAGE", 10),
		NotificationTTL: getEnvDuration("NOTIFICATION_TTL", 5*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SwaggerHost:     os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
