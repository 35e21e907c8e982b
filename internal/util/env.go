package util

import (
	"os"
	"strconv"
)

// Getenv will return an environment variable or a default value
func Getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val != "" {
		return val
	}

	return defaultValue
}

// GetenvBool returns true if the environment variable parses as a true boolean
func GetenvBool(key string) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && val
}

// SetEnv sets an environment variable and returns a function that restores the previous value
func SetEnv(key, val string) func() {
	orig, found := os.LookupEnv(key)
	_ = os.Setenv(key, val)

	return func() {
		if found {
			_ = os.Setenv(key, orig)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}
