package config

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("OUTGOING_WEBHOOK_TOKEN", "abc123")
	t.Setenv("BOT_USERNAME", "trebekbot")
	t.Setenv("BOT_ICON", ":alex:")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("REDISCLOUD_URL", "")
	t.Setenv("LOCAL_REDIS_URL", "redis://cache:6380/1")
	t.Setenv("PROVIDER_MAX_ATTEMPTS", "3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.WebhookToken != "abc123" {
		t.Errorf("WebhookToken = %q, want %q", cfg.WebhookToken, "abc123")
	}
	if cfg.BotUsername != "trebekbot" || cfg.BotIcon != ":alex:" {
		t.Errorf("BotUsername/BotIcon = %q/%q", cfg.BotUsername, cfg.BotIcon)
	}
	if cfg.StoreBackend != StoreRedis {
		t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, StoreRedis)
	}
	if cfg.RedisURL != "redis://cache:6380/1" {
		t.Errorf("RedisURL = %q, want LOCAL_REDIS_URL fallback", cfg.RedisURL)
	}
	if cfg.ProviderMaxAttempts != 3 {
		t.Errorf("ProviderMaxAttempts = %d, want 3", cfg.ProviderMaxAttempts)
	}
}

func TestLoadConfig_RedisURLPrecedence(t *testing.T) {
	t.Setenv("OUTGOING_WEBHOOK_TOKEN", "abc123")
	t.Setenv("STORE_BACKEND", StoreRedis)
	t.Setenv("REDIS_URL", "redis://primary:6379/0")
	t.Setenv("REDISCLOUD_URL", "redis://cloud:6379/0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.RedisURL != "redis://primary:6379/0" {
		t.Errorf("RedisURL = %q, want REDIS_URL to win", cfg.RedisURL)
	}
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Missing OUTGOING_WEBHOOK_TOKEN",
			envVars: map[string]string{"STORE_BACKEND": StoreRedis},
		},
		{
			name: "Postgres without password",
			envVars: map[string]string{
				"OUTGOING_WEBHOOK_TOKEN": "abc123",
				"STORE_BACKEND":          StorePostgres,
			},
		},
		{
			name: "Unknown backend",
			envVars: map[string]string{
				"OUTGOING_WEBHOOK_TOKEN": "abc123",
				"STORE_BACKEND":          "memcached",
			},
		},
		{
			name: "Zero provider attempts",
			envVars: map[string]string{
				"OUTGOING_WEBHOOK_TOKEN": "abc123",
				"PROVIDER_MAX_ATTEMPTS":  "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"OUTGOING_WEBHOOK_TOKEN", "STORE_BACKEND", "DB_PASSWORD", "PROVIDER_MAX_ATTEMPTS"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			if err == nil {
				t.Error("LoadConfig() expected error, got nil")
			}
		})
	}
}

func TestValidateProductionSecurity(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		shouldErr bool
	}{
		{
			name: "Valid production redis config",
			cfg: &Config{
				AppEnv:       "production",
				StoreBackend: StoreRedis,
				WebhookToken: "a_long_enough_webhook_token",
			},
			shouldErr: false,
		},
		{
			name: "Valid production postgres config",
			cfg: &Config{
				AppEnv:       "production",
				StoreBackend: StorePostgres,
				DBSSLMode:    "require",
				WebhookToken: "a_long_enough_webhook_token",
			},
			shouldErr: false,
		},
		{
			name: "Development mode - no validation",
			cfg: &Config{
				AppEnv:       "development",
				StoreBackend: StoreSQLite,
				WebhookToken: "x",
			},
			shouldErr: false,
		},
		{
			name: "Production postgres without SSL",
			cfg: &Config{
				AppEnv:       "production",
				StoreBackend: StorePostgres,
				DBSSLMode:    "disable",
				WebhookToken: "a_long_enough_webhook_token",
			},
			shouldErr: true,
		},
		{
			name: "Production sqlite",
			cfg: &Config{
				AppEnv:       "production",
				StoreBackend: StoreSQLite,
				WebhookToken: "a_long_enough_webhook_token",
			},
			shouldErr: true,
		},
		{
			name: "Production short token",
			cfg: &Config{
				AppEnv:       "production",
				StoreBackend: StoreRedis,
				WebhookToken: "short",
			},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateProductionSecurity()
			if tt.shouldErr && err == nil {
				t.Error("ValidateProductionSecurity() expected error, got nil")
			}
			if !tt.shouldErr && err != nil {
				t.Errorf("ValidateProductionSecurity() unexpected error = %v", err)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "testuser",
		DBPassword: "testpass",
		DBName:     "testdb",
		DBSSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	dsn := cfg.GetDSN()

	if dsn != expected {
		t.Errorf("GetDSN() = %q, want %q", dsn, expected)
	}
}

func TestDurations(t *testing.T) {
	cfg := &Config{HTTPTimeoutSeconds: 10, RateLimitWindowSeconds: 60}

	if got := cfg.GetHTTPTimeout(); got != 10*time.Second {
		t.Errorf("GetHTTPTimeout() = %v, want 10s", got)
	}
	if got := cfg.GetRateLimitWindow(); got != time.Minute {
		t.Errorf("GetRateLimitWindow() = %v, want 1m", got)
	}
}
