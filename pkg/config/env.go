// Package config reads process configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
)

const (
	EnvAddr           = "SLING_ADDR"
	EnvScoreFile      = "SLING_SCORE_FILE"
	EnvTickMultiplier = "SLING_TICK_MULTIPLIER"
	EnvScoreURL       = "SLING_SCORE_URL"
	EnvLogFile        = "SLING_LOG_FILE"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvFloat parses the variable as a float, falling back when it is unset
// or malformed.
func GetEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", key, value, err)
		return fallback
	}
	return parsed
}
