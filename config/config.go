package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config reads a key from the environment, seeding it from .env on first use.
func Config(key string) string {
	loadEnv.Do(func() {
		// .env is optional, real env vars win either way
		_ = godotenv.Load(".env")
	})
	return os.Getenv(key)
}

// ConfigOr returns the value for key, or fallback when it is unset.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
