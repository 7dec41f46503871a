package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY environment variable not set; narration falls back to canned lines")
	}
}

// OpenAIKey returns the OpenAI API key, empty when unset.
func OpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

// DataDir is the BadgerDB data directory.
func DataDir() string {
	return getEnv("GRIDIRON_DATA_DIR", "./data")
}

// HTTPPort is the API listen port.
func HTTPPort() string {
	return getEnv("GRIDIRON_HTTP_PORT", "8080")
}

// NATSURL is the broker address for mood event fan-out.
func NATSURL() string {
	return getEnv("NATS_URL", "nats://localhost:4222")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
