package config

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/internal/utils"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DBConfig is the explicit storage-handle policy: connection coordinates
// plus the retry behavior of open. Nothing here is ambient global state.
type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string

	MaxRetries   int
	RetryBackoff time.Duration
}

func LoadDBConfig() DBConfig {
	return DBConfig{
		Host:         utils.GetConfig("DB_HOST"),
		User:         utils.GetConfig("DB_USER"),
		Password:     utils.GetConfig("DB_PASSWORD"),
		Name:         utils.GetConfig("DB_NAME"),
		Port:         utils.GetConfig("DB_PORT"),
		MaxRetries:   utils.GetConfigInt("DB_MAX_RETRIES", 3),
		RetryBackoff: time.Duration(utils.GetConfigInt("DB_RETRY_DELAY_MS", 500)) * time.Millisecond,
	}
}

// ConnectDB opens the storage handle, retrying per the configured policy.
// Exhausting the retries surfaces as the unavailable sentinel so callers
// know the whole operation is safe to retry.
func ConnectDB(cfg DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	var db *gorm.DB
	var err error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(cfg.RetryBackoff * time.Duration(attempt))
		}
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			return db, nil
		}
		log.Printf("database connection attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
