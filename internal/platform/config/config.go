package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	DatabaseMaxConns   int32 // 0 keeps the pgx default
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	MigrationsPath     string
	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted, e.g. "100-M"

	// Rate table cache; disabled when RedisURL is empty
	RedisURL          string
	RateTableCacheTTL time.Duration

	// Scheduled jobs (robfig/cron specs)
	RateRefreshSchedule string
	ExpiryScanSchedule  string
	ExpiryWarningDays   int

	DisplayLocale       string
	EnforceLetterAmount bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PGSQL_MAX_CONNS", 0)
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5000")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_TABLE_CACHE_TTL", "10m")
	v.SetDefault("RATE_REFRESH_SCHEDULE", "@every 5m")
	v.SetDefault("EXPIRY_SCAN_SCHEDULE", "0 8 * * *")
	v.SetDefault("EXPIRY_WARNING_DAYS", 30)
	v.SetDefault("DISPLAY_LOCALE", "tr")
	v.SetDefault("ENFORCE_LETTER_AMOUNT", false)

	// Environment variables override the defaults above
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cacheTTLStr := v.GetString("RATE_TABLE_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil || cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
		log.Printf("Warning: Invalid value for RATE_TABLE_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL)
	}

	warningDays := v.GetInt("EXPIRY_WARNING_DAYS")
	if warningDays < 0 {
		log.Printf("Warning: EXPIRY_WARNING_DAYS must not be negative (%d). Defaulting to 30.\n", warningDays)
		warningDays = 30
	}

	locale := strings.ToLower(strings.TrimSpace(v.GetString("DISPLAY_LOCALE")))
	if locale != "tr" && locale != "en" {
		log.Printf("Warning: Unsupported DISPLAY_LOCALE ('%s'). Defaulting to tr.\n", locale)
		locale = "tr"
	}

	maxConns := v.GetInt32("PGSQL_MAX_CONNS")
	if maxConns < 0 {
		log.Printf("Warning: PGSQL_MAX_CONNS must not be negative (%d). Using the driver default.\n", maxConns)
		maxConns = 0
	}

	cfg.DatabaseMaxConns = maxConns
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.RedisURL = v.GetString("REDIS_URL")
	cfg.RateTableCacheTTL = cacheTTL
	cfg.RateRefreshSchedule = v.GetString("RATE_REFRESH_SCHEDULE")
	cfg.ExpiryScanSchedule = v.GetString("EXPIRY_SCAN_SCHEDULE")
	cfg.ExpiryWarningDays = warningDays
	cfg.DisplayLocale = locale
	cfg.EnforceLetterAmount = v.GetBool("ENFORCE_LETTER_AMOUNT")

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
