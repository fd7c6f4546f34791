package env

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file when one is present. Deployed environments set
// variables directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set directly.")
	}
}

// Get returns the value of key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

// GetBool reads a "true"/"false" flag, returning fallback when unset.
// Anything other than the string "true" is false.
func GetBool(key string, fallback bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val == "true"
}
