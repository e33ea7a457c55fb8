package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultJWTSecret = "LarGarageDevSecret"

type Config struct {
	Port                   int
	GinMode                string
	DBDriver               string
	DatabaseURL            string
	JWTSecret              string
	AdminName              string
	AdminEmail             string
	AdminPassword          string
	CORSOrigin             string
	WACountryCode          string
	InvoiceCity            string
	LowStockThreshold      int
	BoardRollbackOnFailure bool
	SyncInterval           time.Duration
	LogLevel               string
}

// Load reads .env (if present) and then the process environment.
// Variables already set in the environment win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Port:          8080,
		GinMode:       firstNonEmpty(os.Getenv("GIN_MODE"), "debug"),
		DBDriver:      strings.ToLower(firstNonEmpty(os.Getenv("DB_DRIVER"), "sqlite")),
		DatabaseURL:   firstNonEmpty(os.Getenv("DATABASE_URL"), os.Getenv("DB_URL")),
		JWTSecret:     firstNonEmpty(os.Getenv("JWT_SECRET"), defaultJWTSecret),
		AdminName:     firstNonEmpty(os.Getenv("ADMIN_NAME"), "Admin"),
		AdminEmail:    firstNonEmpty(os.Getenv("ADMIN_EMAIL"), "admin@largarage.local"),
		AdminPassword: firstNonEmpty(os.Getenv("ADMIN_PASSWORD"), "admin123"),
		CORSOrigin:    firstNonEmpty(os.Getenv("CORS_ORIGIN"), "*"),
		WACountryCode: firstNonEmpty(os.Getenv("WA_COUNTRY_CODE"), "62"),
		InvoiceCity:   firstNonEmpty(os.Getenv("INVOICE_CITY"), "Tangerang Selatan"),
		LogLevel:      firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
	}

	if raw := strings.TrimSpace(os.Getenv("PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 {
			return Config{}, fmt.Errorf("invalid PORT: %q", raw)
		}
		cfg.Port = port
	}

	cfg.LowStockThreshold = 5
	if raw := strings.TrimSpace(os.Getenv("LOW_STOCK_THRESHOLD")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid LOW_STOCK_THRESHOLD: %q", raw)
		}
		cfg.LowStockThreshold = n
	}

	if raw := strings.TrimSpace(os.Getenv("BOARD_ROLLBACK_ON_FAILURE")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BOARD_ROLLBACK_ON_FAILURE: %q", raw)
		}
		cfg.BoardRollbackOnFailure = v
	}

	// SYNC_INTERVAL=0 mematikan polling perubahan dari luar proses
	cfg.SyncInterval = 5 * time.Second
	if raw := strings.TrimSpace(os.Getenv("SYNC_INTERVAL")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid SYNC_INTERVAL: %q", raw)
		}
		cfg.SyncInterval = d
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = "largarage.db"
		}
	case "mysql", "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required for DB_DRIVER=%s", cfg.DBDriver)
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER: %q", cfg.DBDriver)
	}

	return cfg, nil
}

// UsesDefaultSecret reports whether JWT_SECRET was left unset.
func (c Config) UsesDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

func firstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if value := strings.TrimSpace(candidate); value != "" {
			return value
		}
	}
	return ""
}
