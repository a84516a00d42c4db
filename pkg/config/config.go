// Package config loads process configuration from a .env file (if
// present) and the environment, failing fast on an insecure JWT secret.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	JWTSecret   string
	Port        string
	PuzzlesFile string
	TiersFile   string
}

// Load sources a .env file into the process environment (ignoring a
// missing file, matching smilemakc/mbflow's bootstrap), then builds a
// Config from the resulting environment. Returns an error if
// JWT_SECRET is not set, is the placeholder value, or is too short.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	jwtSecret := os.Getenv("JWT_SECRET")

	if jwtSecret == "" {
		return nil, errors.New("SECURITY ERROR: JWT_SECRET environment variable is required but not set")
	}

	if jwtSecret == "changeme" {
		return nil, errors.New("SECURITY ERROR: JWT_SECRET cannot be 'changeme' - please set a secure secret")
	}

	if len(jwtSecret) < 32 {
		return nil, errors.New("SECURITY ERROR: JWT_SECRET must be at least 32 characters long")
	}

	return &Config{
		JWTSecret:   jwtSecret,
		Port:        getEnv("PORT", "8080"),
		PuzzlesFile: getEnv("PUZZLES_FILE", "/data/puzzles.json"),
		TiersFile:   getEnv("TIERS_FILE", "internal/carve/tiers.yaml"),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
