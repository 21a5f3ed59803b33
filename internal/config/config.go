package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                 string   `mapstructure:"PORT"`
	Env                  string   `mapstructure:"ENV"`
	CareAPIBaseURL       string   `mapstructure:"CARE_API_BASE_URL"`
	CareAPITimeoutSecs   int      `mapstructure:"CARE_API_TIMEOUT_SECONDS"`
	DoctorID             string   `mapstructure:"DOCTOR_ID"`
	RefreshSchedule      string   `mapstructure:"REFRESH_SCHEDULE"`
	CORSOrigins          []string `mapstructure:"CORS_ORIGINS"`
	SummaryTruncateLimit int      `mapstructure:"SUMMARY_TRUNCATE_LIMIT"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("CARE_API_TIMEOUT_SECONDS", 30)
	// Placeholder identity until a real authentication context exists.
	v.SetDefault("DOCTOR_ID", "dr_123")
	v.SetDefault("REFRESH_SCHEDULE", "")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("SUMMARY_TRUNCATE_LIMIT", 200)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CARE_API_BASE_URL")
	v.BindEnv("CARE_API_TIMEOUT_SECONDS")
	v.BindEnv("DOCTOR_ID")
	v.BindEnv("REFRESH_SCHEDULE")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("SUMMARY_TRUNCATE_LIMIT")

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

	if cfg.CareAPIBaseURL == "" {
		return nil, fmt.Errorf("CARE_API_BASE_URL is required")
	}
	cfg.CareAPIBaseURL = strings.TrimRight(cfg.CareAPIBaseURL, "/")

	if cfg.CareAPITimeoutSecs <= 0 {
		return nil, fmt.Errorf("CARE_API_TIMEOUT_SECONDS must be positive")
	}
	if cfg.SummaryTruncateLimit <= 0 {
		return nil, fmt.Errorf("SUMMARY_TRUNCATE_LIMIT must be positive")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CareAPITimeout returns the remote client timeout as a duration.
func (c *Config) CareAPITimeout() time.Duration {
	return time.Duration(c.CareAPITimeoutSecs) * time.Second
}
