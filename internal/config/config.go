package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store backends
const (
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

const defaultTriviaURL = "http://jservice.io/api/random?count=1"

type Config struct {
	// Slack
	WebhookToken string
	BotUsername  string
	BotIcon      string
	APIToken     string

	// Store
	StoreBackend string
	RedisURL     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	SQLitePath   string

	// Trivia
	TriviaAPIURL        string
	QuestionsXLSX       string
	ProviderMaxAttempts int

	// Application
	AppEnv             string
	AppPort            string
	LogLevel           string
	HTTPTimeoutSeconds int

	// Rate Limiting. Per-user applies to authenticated webhooks; per-IP
	// applies to invalid-token attempts.
	RateLimitPerUser       int
	RateLimitPerIP         int
	RateLimitWindowSeconds int
}

// LoadConfig reads the environment once. The result is treated as immutable.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		WebhookToken: getEnv("OUTGOING_WEBHOOK_TOKEN", ""),
		BotUsername:  getEnv("BOT_USERNAME", ""),
		BotIcon:      getEnv("BOT_ICON", ""),
		APIToken:     getEnv("API_TOKEN", ""),

		StoreBackend: getEnv("STORE_BACKEND", StoreRedis),
		RedisURL:     getEnv("REDIS_URL", getEnv("REDISCLOUD_URL", getEnv("LOCAL_REDIS_URL", "redis://localhost:6379/0"))),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "trebekbot"),
		DBPassword:   getEnv("DB_PASSWORD", ""),
		DBName:       getEnv("DB_NAME", "trebekbot"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		SQLitePath:   getEnv("SQLITE_PATH", "./trebekbot.db"),

		TriviaAPIURL:        getEnv("TRIVIA_API_URL", defaultTriviaURL),
		QuestionsXLSX:       getEnv("QUESTIONS_XLSX", ""),
		ProviderMaxAttempts: getEnvInt("PROVIDER_MAX_ATTEMPTS", 5),

		AppEnv:             getEnv("APP_ENV", "development"),
		AppPort:            getEnv("PORT", "4567"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 10),

		RateLimitPerUser:       getEnvInt("RATE_LIMIT_PER_USER", 20),
		RateLimitPerIP:         getEnvInt("RATE_LIMIT_PER_IP", 20),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.WebhookToken == "" {
		return fmt.Errorf("OUTGOING_WEBHOOK_TOKEN is required")
	}
	switch c.StoreBackend {
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required for the redis store")
		}
	case StorePostgres:
		if c.DBPassword == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres store")
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite store")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be one of redis, postgres, sqlite; got %q", c.StoreBackend)
	}
	if c.ProviderMaxAttempts < 1 {
		return fmt.Errorf("PROVIDER_MAX_ATTEMPTS must be at least 1")
	}
	if c.RateLimitWindowSeconds < 1 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be at least 1")
	}
	return nil
}

func (c *Config) ValidateProductionSecurity() error {
	if c.AppEnv != "production" {
		return nil
	}

	if c.StoreBackend == StoreSQLite {
		return fmt.Errorf("STORE_BACKEND sqlite is not supported in production")
	}
	if c.StoreBackend == StorePostgres && c.DBSSLMode != "require" {
		return fmt.Errorf("DB_SSLMODE must be 'require' in production")
	}
	if len(c.WebhookToken) < 16 {
		return fmt.Errorf("OUTGOING_WEBHOOK_TOKEN looks too short for production")
	}

	return nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) GetHTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

func (c *Config) GetRateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
