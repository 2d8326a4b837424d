package utils

import "os"

// EnvOrDefault returns the value of the environment variable key, or
// fallback when it is unset or empty.
func EnvOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
