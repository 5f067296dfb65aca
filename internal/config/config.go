package config

import (
	"os"
	"strconv"
)

// Storage backend selectors
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	Port    int    // HTTP server port
	Backend string // "file" or "sqlite"

	// HistoryFile is the JSON history location for the file backend
	HistoryFile string
	// DBPath is the sqlite database location for the sqlite backend
	DBPath string

	// HistoryLimit caps retained scan records; oldest entries are evicted
	HistoryLimit int
}

func DefaultConfig() *Config {
	return &Config{
		Port:         5001,
		Backend:      BackendFile,
		HistoryFile:  "data/history.json",
		DBPath:       "data/scans.db",
		HistoryLimit: 100,
	}
}

// Load returns the default configuration with environment overrides applied
func Load() *Config {
	cfg := DefaultConfig()
	cfg.Port = getEnvAsInt("PORT", cfg.Port)
	cfg.Backend = getEnv("STORAGE_BACKEND", cfg.Backend)
	cfg.HistoryFile = getEnv("HISTORY_FILE", cfg.HistoryFile)
	cfg.DBPath = getEnv("DB_PATH", cfg.DBPath)
	cfg.HistoryLimit = getEnvAsInt("HISTORY_LIMIT", cfg.HistoryLimit)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
