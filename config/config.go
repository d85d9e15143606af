package config

import (
	"os"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Points   PointsConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// PointsConfig seeds the accrual rules: points earned per unit amount,
// with per-partner overrides on top of the default rate.
type PointsConfig struct {
	DefaultRate  float64
	PartnerRates map[string]float64
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         envOr("PORT", "8091"),
			Env:          envOr("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             envOr("DATABASE_DSN", "file:loyalty.db?cache=shared&_fk=1"),
			MaxIdleConns:    10,
			MaxOpenConns:    1, // sqlite: single writer
			ConnMaxLifetime: time.Hour,
		},
		Points: PointsConfig{
			DefaultRate: 1, // 1 point per unit amount unless a partner override exists
			PartnerRates: map[string]float64{
				"partner1": 2,
				"partner2": 1.5,
			},
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
