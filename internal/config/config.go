package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           int      `env:"PORT" envDefault:"9090"`
	SQLitePath     string   `env:"SQLITE_PATH" envDefault:"db/reminders.db"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return config, nil
}
