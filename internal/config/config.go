// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/encircleuk/civicrm.extendedreport/pkg/pivot"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// HTTP
	APIURL           string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Database
	DBPath     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string

	// Report display
	Currency       string
	CurrencySymbol string
	Locale         string
	MoneyFormat    string
	HiddenColumns  []string
}

// Load reads the configuration from the environment. Variables in a .env
// file in the working directory are added if they are not already set.
func Load() *Config {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("Config")
	}

	return &Config{
		APIURL:           os.Getenv("API_URL"),
		CORSAllowOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",

		DBPath:     getEnv("DB_PATH", "data/gorm.db"),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		Currency:       getEnv("REPORT_CURRENCY", "USD"),
		CurrencySymbol: os.Getenv("REPORT_CURRENCY_SYMBOL"),
		Locale:         getEnv("REPORT_LOCALE", "en"),
		MoneyFormat:    getEnv("REPORT_MONEY_FORMAT", pivot.DefaultPattern),
		HiddenColumns:  strings.Fields(os.Getenv("REPORT_HIDDEN_COLUMNS")),
	}
}

// Postgres reports if the report tables are read from PostgreSQL instead of SQLite.
func (c *Config) Postgres() bool {
	return c.DBHost != ""
}

// URL returns the parsed API URL.
func (c *Config) URL() (*url.URL, error) {
	return url.Parse(c.APIURL)
}

// Formatter returns the formatter for report amounts.
func (c *Config) Formatter() (pivot.Formatter, error) {
	f, err := pivot.NewFormatter(c.Currency, c.Locale, c.MoneyFormat)
	if err != nil {
		return pivot.Formatter{}, err
	}

	f.Symbol = c.CurrencySymbol
	return f, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.APIURL == "" {
		errors = append(errors, "API_URL must be set")
	} else if u, err := c.URL(); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API_URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API_URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if c.Postgres() {
		if c.DBUser == "" {
			errors = append(errors, "DB_USER must be set when DB_HOST is set")
		}
		if c.DBName == "" {
			errors = append(errors, "DB_NAME must be set when DB_HOST is set")
		}
	} else if c.DBPath == "" {
		errors = append(errors, "DB_PATH cannot be empty when using sqlite")
	}

	if _, err := c.Formatter(); err != nil {
		errors = append(errors, err.Error())
	}

	if !strings.Contains(c.MoneyFormat, "%a") {
		errors = append(errors, fmt.Sprintf("invalid REPORT_MONEY_FORMAT '%s': must contain %%a", c.MoneyFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
