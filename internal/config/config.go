package config

import (
	"fmt"
	"os"
)

// Config represents the application configuration, loaded from environment
// variables. The cmd layer loads a .env file first via godotenv.
type Config struct {
	Server ServerConfig
	Paths  PathConfig
}

// ServerConfig holds web server settings.
type ServerConfig struct {
	Port string
}

// PathConfig holds file system paths.
type PathConfig struct {
	WorkbookFile string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Paths: PathConfig{
			WorkbookFile: os.Getenv("SUIVI_GLOBAL_FILE"),
		},
	}
	if cfg.Paths.WorkbookFile == "" {
		return nil, fmt.Errorf("SUIVI_GLOBAL_FILE is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
