package config

import (
	"RecipeShare-Backend/internal/api/handlers"
	"RecipeShare-Backend/internal/api/routes"
	"RecipeShare-Backend/internal/middleware"
	"RecipeShare-Backend/internal/utils"
	"RecipeShare-Backend/pkg/jwt"
	"RecipeShare-Backend/pkg/recipe"
	"RecipeShare-Backend/pkg/savedlink"
	"RecipeShare-Backend/pkg/stats"
	"RecipeShare-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// bound every request's storage work; repositories run under this
	// deadline and map it to the retryable timeout sentinel
	storageTimeout := time.Duration(utils.GetConfigInt("DB_TIMEOUT_MS", 5000)) * time.Millisecond
	app.Use(middlewares.TimeoutMiddleware(storageTimeout))

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	savedLinkRepository := savedlink.NewSavedLinkRepository(db)
	statsRepository := stats.NewStatsRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository, statsRepository)
	savedLinkService := savedlink.NewSavedLinkService(savedLinkRepository, statsRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	savedLinkHandler := handlers.NewSavedLinkHandler(savedLinkService, validator)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		RecipeHandler:    recipeHandler,
		SavedLinkHandler: savedLinkHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
