package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Load reads a .env file when present; real environment variables win.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found (using environment variables)")
	}
}

// Get returns the environment value for key, or fallback when unset/blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// MustGet returns the environment value for key or an error when missing.
func MustGet(key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return v, nil
}

// GetDuration parses the environment value for key as a duration, falling
// back on parse failure or when unset.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.WithField("key", key).Warnf("invalid duration %q, using %s", v, fallback)
		return fallback
	}
	return d
}
