package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string   `mapstructure:"PORT"`
	Env               string   `mapstructure:"ENV"`
	DatabaseURL       string   `mapstructure:"DATABASE_URL"`
	DBMaxConns        int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns        int32    `mapstructure:"DB_MIN_CONNS"`
	SessionSecret     string   `mapstructure:"SESSION_SECRET"`
	SessionTTL        int      `mapstructure:"SESSION_TTL_MINUTES"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS      float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int      `mapstructure:"RATE_LIMIT_BURST"`
	RequestTimeout    int      `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	PredictionURL     string   `mapstructure:"PREDICTION_URL"`
	PredictionTimeout int      `mapstructure:"PREDICTION_TIMEOUT_SECONDS"`
	ReportDir         string   `mapstructure:"REPORT_DIR"`
	AdminUsername     string   `mapstructure:"ADMIN_USERNAME"`
	AdminPassword     string   `mapstructure:"ADMIN_PASSWORD"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("SESSION_TTL_MINUTES", 12*60)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", 30)
	v.SetDefault("PREDICTION_URL", "http://127.0.0.1:5000")
	v.SetDefault("PREDICTION_TIMEOUT_SECONDS", 10)
	v.SetDefault("REPORT_DIR", "./reports")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("SESSION_SECRET")
	v.BindEnv("SESSION_TTL_MINUTES")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("REQUEST_TIMEOUT_SECONDS")
	v.BindEnv("PREDICTION_URL")
	v.BindEnv("PREDICTION_TIMEOUT_SECONDS")
	v.BindEnv("ADMIN_USERNAME")
	v.BindEnv("ADMIN_PASSWORD")
	v.BindEnv("REPORT_DIR")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. Outside development
// a real SESSION_SECRET must be configured so login tokens cannot be forged.
func (c *Config) Validate() error {
	if !c.IsDev() && len(c.SessionSecret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 characters when ENV=%q", c.Env)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %d", c.SessionTTL)
	}
	if c.PredictionTimeout <= 0 {
		return fmt.Errorf("PREDICTION_TIMEOUT_SECONDS must be positive, got %d", c.PredictionTimeout)
	}
	return nil
}

// SessionLifetime returns the configured session token lifetime.
func (c *Config) SessionLifetime() time.Duration {
	return time.Duration(c.SessionTTL) * time.Minute
}

// PredictionClientTimeout returns the timeout for calls to the inference service.
func (c *Config) PredictionClientTimeout() time.Duration {
	return time.Duration(c.PredictionTimeout) * time.Second
}
