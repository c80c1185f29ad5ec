package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DBDriver        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	JWTSecret       string
	TokenExpiresMin int
	GinMode         string
}

func Load() *Config {
	// Missing .env is fine; real env vars still apply
	_ = godotenv.Load()

	expires, _ := strconv.Atoi(getEnv("TOKEN_EXPIRES_MIN", "30"))

	return &Config{
		Port:            getEnv("PORT", "8080"),
		DBDriver:        getEnv("DB_DRIVER", "mysql"),
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "3306"),
		DBUser:          getEnv("DB_USER", "marketplace"),
		DBPassword:      getEnv("DB_PASSWORD", "marketplace"),
		DBName:          getEnv("DB_NAME", "freelance_marketplace"),
		JWTSecret:       getEnv("JWT_SECRET", "default-secret-key-change-me"),
		TokenExpiresMin: expires,
		GinMode:         getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
