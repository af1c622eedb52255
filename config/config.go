package config

import (
	"log"
	"os"
)

const (
	// ModeSingleFlip reveals one card per request and returns its value.
	ModeSingleFlip = "single"
	// ModeDoubleFlip reveals two cards per request and only reports a match.
	ModeDoubleFlip = "double"
)

type Config struct {
	Addr       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	BotToken   string
	GameMode   string
	ImageDir   string
}

func LoadConfig() *Config {
	return &Config{
		Addr:       getEnv("SERVER_ADDR", ":8000"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "user"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "dbname"),
		JWTSecret:  getEnv("JWT_SECRET", "secret"),
		BotToken:   getEnv("TG_BOT_TOKEN", ""),
		GameMode:   getEnv("GAME_MODE", ModeSingleFlip),
		ImageDir:   getEnv("IMAGE_DIR", "public/images"),
	}
}

// getEnv reads an environment variable and returns its value or a default value
func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = defaultValue
		log.Printf("Environment variable %s not set, using default value: %s", key, defaultValue)
	}
	return value
}
