package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// MonthlyBudget is the fixed wallet budget shown to every user; the
	// data model has no per-user budget column.
	MonthlyBudget decimal.Decimal

	// StrictAvailableFilter makes the "available" group filter require
	// member_count < max_members in addition to status = 'active'. Off by
	// default: the client historically received status-only filtering.
	StrictAvailableFilter bool

	// RateLimit uses the ulule/limiter format, e.g. "100-M" for 100 req/min.
	RateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MONTHLY_BUDGET", "1500.00")
	viper.SetDefault("STRICT_AVAILABLE_FILTER", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	monthlyBudgetStr := viper.GetString("MONTHLY_BUDGET")
	monthlyBudget, err := decimal.NewFromString(monthlyBudgetStr)
	if err != nil || monthlyBudget.IsNegative() {
		monthlyBudget = decimal.RequireFromString("1500.00")
		log.Printf("Warning: Invalid value for MONTHLY_BUDGET ('%s'). Defaulting to %s.\n", monthlyBudgetStr, monthlyBudget.String())
	}
	cfg.MonthlyBudget = monthlyBudget

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.StrictAvailableFilter = viper.GetBool("STRICT_AVAILABLE_FILTER")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
