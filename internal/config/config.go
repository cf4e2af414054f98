// Package config loads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// HTTP server
	Port   string
	APIURL string // External URL the API is reachable under, used for links

	// Database
	DBPath string

	// Reference currency for converted balances
	ReferenceCurrency string

	// Exchange rates endpoint. Empty disables rate fetching, conversion
	// then reports rates as unavailable for foreign currencies.
	RatesURL string
	RatesTTL time.Duration

	// Interval for booking due recurring expenses
	RecurringInterval time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() *Config {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		APIURL:            getEnv("API_URL", "http://localhost:8080"),
		DBPath:            getEnv("DB_PATH", "data/findash.db"),
		ReferenceCurrency: getEnv("REFERENCE_CURRENCY", "EUR"),
		RatesURL:          getEnv("RATES_URL", ""),
		RatesTTL:          getEnvDuration("RATES_TTL", time.Hour),
		RecurringInterval: getEnvDuration("RECURRING_INTERVAL", time.Hour),
	}
}

// Validate checks the configuration for values that can never work.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q: must be a number between 1 and 65535", c.Port)
	}

	_, err = url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("invalid API URL %q: %w", c.APIURL, err)
	}

	if c.RatesURL != "" {
		_, err = url.Parse(c.RatesURL)
		if err != nil {
			return fmt.Errorf("invalid rates URL %q: %w", c.RatesURL, err)
		}
	}

	if c.DBPath == "" {
		return fmt.Errorf("the database path must not be empty")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Str("variable", key).Str("value", value).Msg("not a valid duration, using default")
		return fallback
	}

	return parsed
}
