package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		GoEnv:           "development",
		HTTPPort:        8080,
		DatabaseURL:     "postgres://localhost:5432/reviewhub",
		JWTSecret:       "0123456789abcdef0123456789abcdef",
		JWTExpiry:       24 * time.Hour,
		ConfirmationTTL: 24 * time.Hour,
		RedisURL:        "redis://localhost:6379",
		SMTPAddr:        "localhost:25",
		SMTPFrom:        "noreply@reviewhub.local",
		RateLimitRPS:    20,
		RateLimitBurst:  40,
		LogLevel:        "info",
	}
}

func TestLoadConfig_DefaultsAndRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/reviewhub")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("JWT_EXPIRY", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 24*time.Hour, cfg.ConfirmationTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	bad := validConfig()
	bad.HTTPPort = 0
	assert.Error(t, bad.Validate())

	bad = validConfig()
	bad.LogLevel = "verbose"
	assert.Error(t, bad.Validate())

	bad = validConfig()
	bad.JWTSecret = "short"
	assert.Error(t, bad.Validate())

	bad = validConfig()
	bad.JWTExpiry = 0
	assert.Error(t, bad.Validate())
}

func TestEnvironmentFlags(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.GoEnv = "production"
	assert.True(t, cfg.IsProduction())
}
