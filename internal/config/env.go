package config

import (
	"os"
	"strings"
)

// Config holds the generator settings that come from the environment.
// None of them change which records end up in the migration.
type Config struct {
	Debug       bool
	LogEncoding string
	TablesPath  string
}

// Load reads .env (if present) and then the SEEDGEN_* variables
func Load() Config {
	LoadEnv()
	return Config{
		Debug:       GetEnvBool("SEEDGEN_DEBUG", false),
		LogEncoding: GetEnv("SEEDGEN_LOG_ENCODING", "console"),
		TablesPath:  GetEnv("SEEDGEN_COURT_TABLES", ""),
	}
}

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	// Try to load from .env file in current directory first, then parent directories
	envPaths := []string{".env", "../.env", "../../.env"}

	for _, envPath := range envPaths {
		if data, err := os.ReadFile(envPath); err == nil {
			applyEnv(string(data))
			break // Successfully loaded, don't try other paths
		}
	}
}

// applyEnv sets KEY=VALUE lines that are not already set
func applyEnv(data string) {
	lines := strings.Split(data, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

			// Only set if not already set
			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	}
}

// GetEnv gets environment variable with default
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool gets boolean environment variable with default
func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}
