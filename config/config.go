// Package config loads runtime settings and opens the shared database handle.
//
// Settings come from an optional .env file, then the process environment,
// then the defaults below.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Port string

	DBURL             string
	DBMaxIdleConns    int
	DBMaxOpenConns    int
	DBConnMaxLifetime time.Duration

	LogLevel  string
	LogFormat string

	JWTSecret      string
	JWTExpiryHours int

	AdminEmail    string
	AdminPassword string

	CORSOrigins []string
	SeedCatalog bool

	DigestSchedule    string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	AdminPhone        string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 50)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("SEED_CATALOG", true)
	v.SetDefault("DIGEST_SCHEDULE", "0 9 * * *")
}

// Load reads .env (if present) and the environment.
func Load() (*Config, bool) {
	dotenv := godotenv.Load() == nil

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return fromViper(v), dotenv
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:              v.GetString("PORT"),
		DBURL:             v.GetString("DB_URL"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTExpiryHours:    v.GetInt("JWT_EXPIRY_HOURS"),
		AdminEmail:        strings.TrimSpace(v.GetString("ADMIN_EMAIL")),
		AdminPassword:     v.GetString("ADMIN_PASSWORD"),
		CORSOrigins:       splitList(v.GetString("CORS_ORIGINS")),
		SeedCatalog:       v.GetBool("SEED_CATALOG"),
		DigestSchedule:    v.GetString("DIGEST_SCHEDULE"),
		TwilioAccountSID:  v.GetString("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   v.GetString("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber: v.GetString("TWILIO_PHONE_NUMBER"),
		AdminPhone:        v.GetString("ADMIN_PHONE"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate reports missing required settings.
func (c *Config) Validate() error {
	var errs []error
	if c.DBURL == "" {
		errs = append(errs, errors.New("DB_URL is required"))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.JWTExpiryHours <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRY_HOURS must be positive"))
	}
	if (c.AdminEmail == "") != (c.AdminPassword == "") {
		errs = append(errs, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together"))
	}
	return errors.Join(errs...)
}

// TwilioEnabled reports whether digest messages can be delivered.
func (c *Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioPhoneNumber != "" && c.AdminPhone != ""
}

// TokenExpiry is the admin session lifetime.
func (c *Config) TokenExpiry() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}
