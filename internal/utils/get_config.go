package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Storage handle policy
	DBMaxRetries   int `yaml:"DB_MAX_RETRIES"`
	DBRetryDelayMS int `yaml:"DB_RETRY_DELAY_MS"`
	DBTimeoutMS    int `yaml:"DB_TIMEOUT_MS"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// App
	AppPort string `yaml:"APP_PORT"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	os.Setenv("JWT_SECRET", config.JWTSecret)
}

func GetConfig(key string) string {
	// Environment wins over the yaml file so .env overrides work.
	if v := os.Getenv(key); v != "" {
		return v
	}

	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "APP_PORT":
		return config.AppPort
	default:
		return ""
	}
}

func GetConfigInt(key string, fallback int) int {
	switch key {
	case "DB_MAX_RETRIES":
		if config.DBMaxRetries > 0 {
			return config.DBMaxRetries
		}
	case "DB_RETRY_DELAY_MS":
		if config.DBRetryDelayMS > 0 {
			return config.DBRetryDelayMS
		}
	case "DB_TIMEOUT_MS":
		if config.DBTimeoutMS > 0 {
			return config.DBTimeoutMS
		}
	}
	return fallback
}
