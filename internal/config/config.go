package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string
	MongoURI string
	MongoDB  string
	GelfAddr string
}

// Load reads configuration from the environment, after loading a local .env
// file if one exists.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded .env file")
	}
	return &Config{
		HTTPAddr: getEnv("ADDR", ":8080"),
		MongoURI: getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:  getEnv("MONGODB_DB", "mydb"),
		GelfAddr: getEnv("GELF_ADDR", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
