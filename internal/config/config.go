package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the ambient service settings. Catalog contents and pricing
// constants are compile-time data and deliberately not configurable here.
type Config struct {
	Port            int
	ImagesDir       string
	SessionTTL      time.Duration
	JanitorInterval time.Duration
	AllowedOrigins  []string
}

// LoadConfig reads settings from the environment, honoring a local .env
// file when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            3000,
		ImagesDir:       "images",
		SessionTTL:      2 * time.Hour,
		JanitorInterval: 5 * time.Minute,
		AllowedOrigins:  []string{"*"},
	}

	if v := os.Getenv("STOREFRONT_IMAGES_DIR"); v != "" {
		cfg.ImagesDir = v
	}
	if v := os.Getenv("STOREFRONT_SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, err
		}
		cfg.SessionTTL = d
	}
	if v := os.Getenv("STOREFRONT_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = []string{v}
	}

	return cfg, nil
}
