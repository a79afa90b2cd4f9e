package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment does not override them.
const (
	DefaultAPIBaseURL     = "https://api.doclair.com"
	DefaultAPITimeout     = 60 * time.Second
	DefaultMaxUploadMB    = 25
	DefaultPreviewMaxEdge = 1600
	DefaultDebounce       = 120 * time.Millisecond
	DefaultLogLevel       = "info"
)

// Config carries every environment-tunable setting of the client.
type Config struct {
	// APIBaseURL is the processing API root (DOCLAIR_API_URL).
	APIBaseURL string
	// APITimeout bounds each submission round-trip (DOCLAIR_API_TIMEOUT,
	// Go duration syntax such as "90s").
	APITimeout time.Duration
	// MaxUploadMB caps files accepted for load and submission
	// (DOCLAIR_MAX_UPLOAD_MB); 0 disables the cap.
	MaxUploadMB int64
	// PreviewMaxEdge caps the preview buffer's longest side
	// (DOCLAIR_PREVIEW_MAX_EDGE); 0 disables downscaling.
	PreviewMaxEdge int
	// Debounce is the live preview debounce window (DOCLAIR_DEBOUNCE_MS).
	Debounce time.Duration
	// LogLevel is the zerolog level name (DOCLAIR_LOG_LEVEL).
	LogLevel string
}

// MaxUploadBytes returns the upload cap in bytes, 0 when uncapped.
func (c Config) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return 0
	}
	return c.MaxUploadMB << 20
}

// Load reads the configuration from the environment after loading an
// optional .env file from the working directory.
func Load() (Config, error) {
	_ = godotenv.Load() // .env is optional
	return FromEnv()
}

// FromEnv reads the configuration from already-set environment variables,
// keeping defaults for unset or empty values.
func FromEnv() (Config, error) {
	cfg := Config{
		APIBaseURL:     DefaultAPIBaseURL,
		APITimeout:     DefaultAPITimeout,
		MaxUploadMB:    DefaultMaxUploadMB,
		PreviewMaxEdge: DefaultPreviewMaxEdge,
		Debounce:       DefaultDebounce,
		LogLevel:       DefaultLogLevel,
	}
	if v := os.Getenv("DOCLAIR_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("DOCLAIR_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("DOCLAIR_API_TIMEOUT: %w", err)
		}
		cfg.APITimeout = d
	}
	if v := os.Getenv("DOCLAIR_MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("DOCLAIR_MAX_UPLOAD_MB: invalid value %q", v)
		}
		cfg.MaxUploadMB = n
	}
	if v := os.Getenv("DOCLAIR_PREVIEW_MAX_EDGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("DOCLAIR_PREVIEW_MAX_EDGE: invalid value %q", v)
		}
		cfg.PreviewMaxEdge = n
	}
	if v := os.Getenv("DOCLAIR_DEBOUNCE_MS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("DOCLAIR_DEBOUNCE_MS: invalid value %q", v)
		}
		cfg.Debounce = time.Duration(n) * time.Millisecond
	}
	if v := os.Getenv("DOCLAIR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}
