package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the configuration for the application.
type Config struct {
	// DataDir is where the application keeps its database, logs and
	// exported plans. Defaults to ~/.smartmeal.
	DataDir string

	// DBPath is the SQLite database file. Defaults to <DataDir>/smartmeal.db.
	DBPath string

	// ExportDir is where plan exports (txt/pdf) are written.
	// Defaults to <DataDir>/exports.
	ExportDir string
}

// NewFromEnv creates a new Config object from environment variables,
// falling back to per-user defaults so the app runs with no setup.
func NewFromEnv() (*Config, error) {
	dataDir := os.Getenv("SMARTMEAL_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".smartmeal")
	}

	dbPath := os.Getenv("SMARTMEAL_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "smartmeal.db")
	}

	exportDir := os.Getenv("SMARTMEAL_EXPORT_DIR")
	if exportDir == "" {
		exportDir = filepath.Join(dataDir, "exports")
	}

	return &Config{
		DataDir:   dataDir,
		DBPath:    dbPath,
		ExportDir: exportDir,
	}, nil
}
