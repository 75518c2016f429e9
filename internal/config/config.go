package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultDatabasePath = "expense_tracker.db"

type Config struct {
	TelegramToken string
	DatabasePath  string
}

func Load() (*Config, error) {
	// Missing .env is fine; the environment may carry everything already.
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DatabasePath:  os.Getenv("DATABASE_PATH"),
	}
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = defaultDatabasePath
	}
	return cfg, nil
}
