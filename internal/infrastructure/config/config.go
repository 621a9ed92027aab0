package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

const defaultJWTSecret = "change-me-in-production"

// Config holds application configuration values loaded from the environment.
type Config struct {
	Port                    string  `mapstructure:"PORT"`
	Env                     string  `mapstructure:"APP_ENV"`
	AppBaseURL              string  `mapstructure:"APP_BASE_URL"`
	MongoURI                string  `mapstructure:"MONGODB_URI"`
	MongoDBName             string  `mapstructure:"MONGODB_DB_NAME"`
	JWTSecret               string  `mapstructure:"JWT_SECRET"`
	TokenTTLHours           int     `mapstructure:"TOKEN_TTL_HOURS"`
	CookieMaxAgeSeconds     int     `mapstructure:"COOKIE_MAX_AGE_SECONDS"`
	CookieSecure            bool    `mapstructure:"COOKIE_SECURE"`
	PasswordResetExpiryMins int     `mapstructure:"PASSWORD_RESET_TOKEN_EXPIRY_MINUTES"`
	RedisURL                string  `mapstructure:"REDIS_URL"`
	EmailHost               string  `mapstructure:"EMAIL_HOST"`
	EmailPort               string  `mapstructure:"EMAIL_PORT"`
	EmailUsername           string  `mapstructure:"EMAIL_USERNAME"`
	EmailAppPassword        string  `mapstructure:"EMAIL_APP_PASSWORD"`
	EmailFrom               string  `mapstructure:"EMAIL_FROM"`
	ElevateReaders          bool    `mapstructure:"ELEVATE_READERS"`
	RateLimitPerSecond      float64 `mapstructure:"RATE_LIMIT_PER_SECOND"`
	AllowedOrigins          string  `mapstructure:"ALLOWED_ORIGINS"`
	SuperAdminEmail         string  `mapstructure:"SUPERADMIN_EMAIL"`
	SuperAdminPassword      string  `mapstructure:"SUPERADMIN_PASSWORD"`
	SuperAdminUserName      string  `mapstructure:"SUPERADMIN_USERNAME"`
	SuperAdminMobile        string  `mapstructure:"SUPERADMIN_MOBILE"`
	SuperAdminCountry       string  `mapstructure:"SUPERADMIN_COUNTRY"`
	SuperAdminCity          string  `mapstructure:"SUPERADMIN_CITY"`
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

var keys = []string{
	"PORT", "APP_ENV", "APP_BASE_URL", "MONGODB_URI", "MONGODB_DB_NAME", "JWT_SECRET",
	"TOKEN_TTL_HOURS", "COOKIE_MAX_AGE_SECONDS", "COOKIE_SECURE", "PASSWORD_RESET_TOKEN_EXPIRY_MINUTES",
	"REDIS_URL", "EMAIL_HOST", "EMAIL_PORT", "EMAIL_USERNAME", "EMAIL_APP_PASSWORD", "EMAIL_FROM",
	"ELEVATE_READERS", "RATE_LIMIT_PER_SECOND", "ALLOWED_ORIGINS",
	"SUPERADMIN_EMAIL", "SUPERADMIN_PASSWORD", "SUPERADMIN_USERNAME", "SUPERADMIN_MOBILE",
	"SUPERADMIN_COUNTRY", "SUPERADMIN_CITY",
}

// LoadConfig reads configuration from environment variables, applying defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	// Unmarshal ignores environment-only keys unless they are bound.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_BASE_URL", "http://localhost:8080")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DB_NAME", "quill")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("TOKEN_TTL_HOURS", 24)
	v.SetDefault("COOKIE_MAX_AGE_SECONDS", 86400)
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("PASSWORD_RESET_TOKEN_EXPIRY_MINUTES", 10)
	v.SetDefault("EMAIL_PORT", "587")
	v.SetDefault("ELEVATE_READERS", false)
	v.SetDefault("RATE_LIMIT_PER_SECOND", 10)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("SUPERADMIN_USERNAME", "superAdmin")
	v.SetDefault("SUPERADMIN_COUNTRY", "unknown")
	v.SetDefault("SUPERADMIN_CITY", "unknown")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate ensures that required configuration values are present and sane.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.MongoURI == "" || c.MongoDBName == "" {
		return errors.New("MONGODB_URI and MONGODB_DB_NAME are required")
	}
	if c.TokenTTLHours <= 0 {
		return errors.New("TOKEN_TTL_HOURS must be positive")
	}
	if c.CookieMaxAgeSeconds <= 0 {
		return errors.New("COOKIE_MAX_AGE_SECONDS must be positive")
	}
	if c.PasswordResetExpiryMins <= 0 {
		return errors.New("PASSWORD_RESET_TOKEN_EXPIRY_MINUTES must be positive")
	}
	if c.RateLimitPerSecond <= 0 {
		return errors.New("RATE_LIMIT_PER_SECOND must be positive")
	}
	if c.IsProduction() {
		if c.JWTSecret == defaultJWTSecret || len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be changed and at least 32 characters in production")
		}
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetPasswordResetTokenExpiry returns the expiry duration for password reset tokens.
func (c *Config) GetPasswordResetTokenExpiry() time.Duration {
	return time.Duration(c.PasswordResetExpiryMins) * time.Minute
}

// TokenTTL is the lifetime of an issued credential.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// HasSuperAdminSeed reports whether enough is configured to create the first super admin.
func (c *Config) HasSuperAdminSeed() bool {
	return c.SuperAdminEmail != "" && c.SuperAdminPassword != "" && c.SuperAdminMobile != ""
}

// SuperAdminSeed returns the first super admin's registration details.
func (c *Config) SuperAdminSeed() usecasecontract.RegisterInput {
	return usecasecontract.RegisterInput{
		UserName: c.SuperAdminUserName,
		Email:    c.SuperAdminEmail,
		Password: c.SuperAdminPassword,
		Country:  c.SuperAdminCountry,
		City:     c.SuperAdminCity,
		Mobile:   c.SuperAdminMobile,
	}
}
