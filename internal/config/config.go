package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables (a .env file is loaded by the entry point).
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Metadata MetadataConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, production
	// Host is fixed to the loopback interface: the API only serves the
	// desktop GUI running on the same workstation.
	Host string
	Port string
}

type DatabaseConfig struct {
	// Path of the single-file SQLite database.
	Path string
	// BusyTimeout passed to the driver, in milliseconds.
	BusyTimeout int
}

type MetadataConfig struct {
	// Base URLs of the external book-metadata providers. Empty disables
	// the provider.
	GoogleBooksURL string
	OpenLibraryURL string
	// Timeout for a single provider request.
	Timeout time.Duration
}

// Load reads configuration from environment variables with defaults that
// work out of the box on a fresh workstation.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Libreria API"),
			Environment: getEnv("APP_ENV", "development"),
			Host:        "127.0.0.1",
			Port:        getEnv("APP_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Path:        getEnv("DB_PATH", "data/library_app.db"),
			BusyTimeout: getEnvInt("DB_BUSY_TIMEOUT_MS", 5000),
		},
		Metadata: MetadataConfig{
			GoogleBooksURL: getEnv("METADATA_GOOGLE_BOOKS_URL", "https://www.googleapis.com/books/v1"),
			OpenLibraryURL: getEnv("METADATA_OPEN_LIBRARY_URL", "https://openlibrary.org"),
			Timeout:        time.Duration(getEnvInt("METADATA_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
