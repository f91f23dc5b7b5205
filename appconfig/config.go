// Package appconfig reads runtime settings from the environment.
package appconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide runtime settings.
type Config struct {
	DatabaseDriver string
	DatabasePath   string
	Port           string

	AllocationConfigPath string
	WatchAllocationFile  bool

	ScanInterval       time.Duration
	ScanWindow         time.Duration
	ScanBatchLimit     int
	ChainCheckInterval time.Duration

	ExecutorURL          string
	ExecutorTimeout      time.Duration
	ExecutorTokenURL     string
	ExecutorClientID     string
	ExecutorClientSecret string

	OIDCIssuer   string
	OIDCAudience string
}

// LoadEnvFile loads a .env file into the environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load the env vars: %w", err)
	}
	return nil
}

// FromEnv builds a Config from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseDriver:       getenv("DATABASE_DRIVER", "sqlite3"),
		DatabasePath:         getenv("DATABASE_PATH", "allocation_ledger.db"),
		Port:                 getenv("PORT", "8080"),
		AllocationConfigPath: os.Getenv("ALLOCATION_CONFIG_PATH"),
		ExecutorURL:          os.Getenv("EXECUTOR_URL"),
		ExecutorTokenURL:     os.Getenv("EXECUTOR_TOKEN_URL"),
		ExecutorClientID:     os.Getenv("EXECUTOR_CLIENT_ID"),
		ExecutorClientSecret: os.Getenv("EXECUTOR_CLIENT_SECRET"),
		OIDCIssuer:           os.Getenv("OIDC_ISSUER"),
		OIDCAudience:         os.Getenv("OIDC_AUDIENCE"),
	}

	var err error
	if cfg.WatchAllocationFile, err = getbool("WATCH_ALLOCATION_CONFIG", true); err != nil {
		return nil, err
	}
	if cfg.ScanInterval, err = getduration("SCAN_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.ScanWindow, err = getduration("SCAN_WINDOW", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.ScanBatchLimit, err = getint("SCAN_BATCH_LIMIT", 100); err != nil {
		return nil, err
	}
	if cfg.ChainCheckInterval, err = getduration("CHAIN_CHECK_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.ExecutorTimeout, err = getduration("EXECUTOR_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case "sqlite3", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (want sqlite3 or sqlite)", c.DatabaseDriver)
	}
	if c.ScanBatchLimit <= 0 {
		return fmt.Errorf("SCAN_BATCH_LIMIT must be positive, got %d", c.ScanBatchLimit)
	}
	if c.ExecutorTimeout <= 0 {
		return fmt.Errorf("EXECUTOR_TIMEOUT must be positive, got %s", c.ExecutorTimeout)
	}
	if c.ExecutorTokenURL != "" && (c.ExecutorClientID == "" || c.ExecutorClientSecret == "") {
		return fmt.Errorf("EXECUTOR_TOKEN_URL requires EXECUTOR_CLIENT_ID and EXECUTOR_CLIENT_SECRET")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getint(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getbool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
