package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Match   MatchConfig
	Reports ReportsConfig
}

// MatchConfig holds comparator-related configuration
type MatchConfig struct {
	MinSimilarity        float64
	InvoiceMinSimilarity float64
	NumTolerance         float64
}

// ReportsConfig holds report output configuration
type ReportsConfig struct {
	Dir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Match: MatchConfig{
			MinSimilarity:        getEnvAsFloat64("BENCH_MIN_SIM", 0.85),
			InvoiceMinSimilarity: getEnvAsFloat64("BENCH_INVOICE_MIN_SIM", 0.70),
			NumTolerance:         getEnvAsFloat64("BENCH_NUM_TOLERANCE", 0.001),
		},
		Reports: ReportsConfig{
			Dir: getEnv("BENCH_REPORTS_DIR", "reports"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Match.MinSimilarity < 0 || c.Match.MinSimilarity > 1 {
		return NewAppError("CONFIG_ERROR", "BENCH_MIN_SIM must be in [0,1]", ErrInvalidInput)
	}
	if c.Match.InvoiceMinSimilarity < 0 || c.Match.InvoiceMinSimilarity > 1 {
		return NewAppError("CONFIG_ERROR", "BENCH_INVOICE_MIN_SIM must be in [0,1]", ErrInvalidInput)
	}
	if c.Match.NumTolerance < 0 {
		return NewAppError("CONFIG_ERROR", "BENCH_NUM_TOLERANCE must be >= 0", ErrInvalidInput)
	}
	if c.Reports.Dir == "" {
		return NewAppError("CONFIG_ERROR", "BENCH_REPORTS_DIR is required", ErrInvalidInput)
	}
	return nil
}
