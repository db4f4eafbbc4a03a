package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.DBMaxIdleConns)
	assert.Equal(t, 50, cfg.DBMaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiry())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.True(t, cfg.SeedCatalog)
	assert.Equal(t, "0 9 * * *", cfg.DigestSchedule)
	assert.False(t, cfg.TwilioEnabled())

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_URL is required")
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/orders")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("SEED_CATALOG", "false")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("ADMIN_EMAIL", " admin@example.com ")
	t.Setenv("ADMIN_PASSWORD", "pw")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC1")
	t.Setenv("TWILIO_AUTH_TOKEN", "tok")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550100")
	t.Setenv("ADMIN_PHONE", "whatsapp:+15550199")

	cfg, _ := Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.SeedCatalog)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.True(t, cfg.TwilioEnabled())
}

func TestValidateAdminPair(t *testing.T) {
	cfg := &Config{DBURL: "x", JWTSecret: "y", JWTExpiryHours: 1, AdminEmail: "a@x.com"}
	assert.ErrorContains(t, cfg.Validate(), "ADMIN_EMAIL and ADMIN_PASSWORD")

	cfg.AdminPassword = "pw"
	assert.NoError(t, cfg.Validate())

	cfg.JWTExpiryHours = 0
	assert.ErrorContains(t, cfg.Validate(), "JWT_EXPIRY_HOURS")
}
