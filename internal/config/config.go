package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"

	"openhours/internal/core/domain/hours"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Port       uint16 `env:"PORT" envDefault:"9090"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`
	RabbitmqURL   string `env:"RABBITMQ_URL,required"`

	StatusChangedQueue   string        `env:"STATUS_CHANGED_QUEUE" envDefault:"place-status-changed"`
	StatusTrackingPeriod time.Duration `env:"STATUS_TRACKING_PERIOD" envDefault:"1m"`
	StatusTTL            time.Duration `env:"STATUS_TTL" envDefault:"24h"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Requests per minute and client address.
	EvaluateRateLimit uint16 `env:"EVALUATE_RATE_LIMIT" envDefault:"120"`

	HolidayCountry     string `env:"HOLIDAY_COUNTRY" envDefault:"US"`
	HolidaySubdivision string `env:"HOLIDAY_SUBDIVISION"`
	HolidaysFile       string `env:"HOLIDAYS_FILE"`
	ReferenceMonthdays bool   `env:"REFERENCE_MONTHDAYS" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.StatusTrackingPeriod <= 0 {
		return nil, fmt.Errorf("STATUS_TRACKING_PERIOD must be positive, got %s", cfg.StatusTrackingPeriod)
	}
	if cfg.HolidayCountry == "" && cfg.HolidaySubdivision != "" {
		return nil, fmt.Errorf("HOLIDAY_SUBDIVISION requires HOLIDAY_COUNTRY")
	}
	return cfg, nil
}

func (c *Config) DefaultRegion() hours.Region {
	return hours.Region{
		Country:     strings.ToUpper(c.HolidayCountry),
		Subdivision: strings.ToUpper(c.HolidaySubdivision),
	}
}
