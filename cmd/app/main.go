package main

import (
	"RecipeShare-Backend/cmd/config"
	migration "RecipeShare-Backend/cmd/database/migrate"
	"RecipeShare-Backend/internal/utils"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	utils.LoadConfig()

	db, err := config.ConnectDB(config.LoadDBConfig())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
