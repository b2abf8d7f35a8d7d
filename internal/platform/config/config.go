package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StorageDriver string

	DatabaseURL   string
	DBMaxConns    int32
	RunMigrations bool

	// Card cipher key material. The AES key is derived with HKDF from CardKeySecret.
	CardKeySecret string
	CardKeyID     string
	CardKeySalt   string

	// Service-to-service auth; an empty secret disables it.
	ServiceJWTSecret string
	JWTIssuer        string

	RateLimit          string
	CORSAllowedOrigins []string
	PosthogAPIKey      string
	PosthogEndpoint    string
	SeedDemoData       bool
}

const insecureDevCardSecret = "corebank-dev-card-secret-change-me"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8082")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("CARD_KEY_SECRET", "")
	v.SetDefault("CARD_KEY_ID", "k1")
	v.SetDefault("CARD_KEY_SALT", "corebank-card-key")
	v.SetDefault("SERVICE_JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "corebank")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "")
	v.SetDefault("SEED_DEMO_DATA", true)

	v.AutomaticEnv()

	cfg := &Config{
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		StorageDriver:    strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		DatabaseURL:      v.GetString("PGSQL_URL"),
		DBMaxConns:       v.GetInt32("DB_MAX_CONNS"),
		RunMigrations:    v.GetBool("RUN_MIGRATIONS"),
		CardKeySecret:    v.GetString("CARD_KEY_SECRET"),
		CardKeyID:        v.GetString("CARD_KEY_ID"),
		CardKeySalt:      v.GetString("CARD_KEY_SALT"),
		ServiceJWTSecret: v.GetString("SERVICE_JWT_SECRET"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),
		RateLimit:        v.GetString("RATE_LIMIT"),
		PosthogAPIKey:    v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:  v.GetString("POSTHOG_ENDPOINT"),
		SeedDemoData:     v.GetBool("SEED_DEMO_DATA"),
	}
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.Port == "" {
		cfg.Port = "8082"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q (want %s or %s)", cfg.StorageDriver, StorageMemory, StoragePostgres)
	}

	if cfg.CardKeySecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("CARD_KEY_SECRET must be set in production")
		}
		log.Println("Warning: CARD_KEY_SECRET not set. Using insecure development secret.")
		cfg.CardKeySecret = insecureDevCardSecret
	}

	if cfg.ServiceJWTSecret == "" {
		log.Println("Warning: SERVICE_JWT_SECRET not set. Service authentication is disabled.")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
