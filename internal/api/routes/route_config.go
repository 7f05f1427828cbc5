package routes

import (
	"RecipeShare-Backend/internal/api/handlers"
	"RecipeShare-Backend/internal/middleware"
	"RecipeShare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	RecipeHandler    handlers.RecipeHandler
	SavedLinkHandler handlers.SavedLinkHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Users()
	c.Recipes()
	c.SavedLinks()
	c.GuestRoute()
}

func (c *Config) Users() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	users := c.App.Group("/api/v1/users")
	{
		users.Post("/resolve", auth, c.UserHandler.ResolveIdentity)
		users.Get("/me", auth, c.UserHandler.Me)
		users.Patch("/me", auth, c.UserHandler.UpdateProfile)
		users.Delete("/me", auth, c.UserHandler.DeactivateMe)
	}
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	recipes := c.App.Group("/api/v1/recipes")

	// public listing and detail
	recipes.Get("", c.RecipeHandler.ListRecipes)
	recipes.Get("/mine", auth, c.RecipeHandler.ListMyRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipe)

	// authoring
	recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipes.Patch("/:id", auth, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/publish", auth, c.RecipeHandler.PublishRecipe)
	recipes.Post("/:id/unpublish", auth, c.RecipeHandler.UnpublishRecipe)

	// social
	recipes.Post("/:id/like", auth, c.RecipeHandler.LikeRecipe)
	recipes.Delete("/:id/like", auth, c.RecipeHandler.UnlikeRecipe)
	recipes.Post("/:id/save", auth, c.RecipeHandler.SaveRecipe)
	recipes.Delete("/:id/save", auth, c.RecipeHandler.UnsaveRecipe)
	recipes.Post("/:id/rating", auth, c.RecipeHandler.RateRecipe)
}

func (c *Config) SavedLinks() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	links := c.App.Group("/api/v1/saved-links", auth)

	links.Get("/stats", c.SavedLinkHandler.GetLinkStats)
	links.Post("/bulk-delete", c.SavedLinkHandler.BulkDeleteLinks)

	links.Post("", c.SavedLinkHandler.CreateLink)
	links.Get("", c.SavedLinkHandler.ListLinks)
	links.Get("/:id", c.SavedLinkHandler.GetLink)
	links.Patch("/:id", c.SavedLinkHandler.UpdateLink)
	links.Delete("/:id", c.SavedLinkHandler.DeleteLink)
	links.Post("/:id/visit", c.SavedLinkHandler.VisitLink)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
