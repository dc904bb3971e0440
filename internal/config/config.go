package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultHost          = "127.0.0.1"
	defaultPort          = "3000"
	defaultUploadDir     = "uploads"
	defaultMaxUploadMB   = "50"
	defaultThumbBox      = "300"
	defaultDatabaseURL   = "portfolio.db"
	defaultAllowedOrigin = "*"
)

// Config carries everything the server needs from the environment.
// It is built once in main and passed explicitly into constructors so
// components stay testable with a temp dir and an in-memory database.
type Config struct {
	AppEnv      string
	ServerHost  string
	ServerPort  string
	DatabaseURL string

	UploadDir      string
	APIKey         string
	MaxUploadBytes int64

	ThumbWidth  int
	ThumbHeight int
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerHost:  getEnv("SERVER_HOST", defaultHost),
		ServerPort:  getEnv("SERVER_PORT", defaultPort),
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL),
		UploadDir:   getEnv("UPLOAD_DIR", defaultUploadDir),
		APIKey:      strings.TrimSpace(os.Getenv("API_KEY")),
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	maxMB, err := parseIntEnv("MAX_UPLOAD_MB", defaultMaxUploadMB)
	if err != nil {
		return nil, err
	}
	cfg.MaxUploadBytes = int64(maxMB) * 1024 * 1024

	cfg.ThumbWidth, err = parseIntEnv("THUMB_WIDTH", defaultThumbBox)
	if err != nil {
		return nil, err
	}
	cfg.ThumbHeight, err = parseIntEnv("THUMB_HEIGHT", defaultThumbBox)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the host:port pair the HTTP server binds to.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func validate(cfg *Config) error {
	if cfg.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be > 0")
	}
	if cfg.ThumbWidth <= 0 || cfg.ThumbHeight <= 0 {
		return fmt.Errorf("THUMB_WIDTH and THUMB_HEIGHT must be > 0")
	}
	if isProdLike(cfg.AppEnv) && cfg.APIKey == "" {
		return fmt.Errorf("in prod/release API_KEY must be set")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
