// Package config reads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Get returns the value of an environment variable, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetInt returns an integer environment variable, or fallback when unset
// or unparsable.
func GetInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// GetDurationSeconds returns a duration configured in whole seconds.
func GetDurationSeconds(key string, fallbackSeconds int) time.Duration {
	return time.Duration(GetInt(key, fallbackSeconds)) * time.Second
}
