package routes

import (
	"frigoo-backend/internal/api/handlers"
	"frigoo-backend/internal/middleware"
	"frigoo-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	FridgeHandler handlers.FridgeHandler
	RecipeHandler handlers.RecipeHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FridgeItems()
	c.Recipes()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/change-password", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ChangePassword)
		user.Post("/avatar", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UploadAvatar)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	// Raw generation contract: body {items, mealType}, response is the plain
	// recipe object or {error}.
	c.App.Post("/api/recipes", c.RecipeHandler.GenerateRecipe)
}

func (c *Config) FridgeItems() {
	fridgeItems := c.App.Group("/api/v1/fridge-items", c.Middleware.AuthMiddleware(c.JWTService))
	fridgeItems.Get("/summary", c.FridgeHandler.GetFridgeSummary)

	// Basic CRUD operations
	fridgeItems.Post("", c.FridgeHandler.AddFridgeItem)
	fridgeItems.Get("", c.FridgeHandler.GetFridgeItems)
	fridgeItems.Get("/:id", c.FridgeHandler.GetFridgeItemDetails)
	fridgeItems.Put("/:id", c.FridgeHandler.UpdateFridgeItem)
	fridgeItems.Delete("/:id", c.FridgeHandler.DeleteFridgeItem)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))
	recipes.Get("/suggestions", c.RecipeHandler.GetCatalogSuggestions)
	recipes.Post("/generate", c.RecipeHandler.GenerateRecipe)
	recipes.Post("", c.RecipeHandler.SaveRecipe)
	recipes.Get("/saved", c.RecipeHandler.GetSavedRecipes)
	recipes.Post("/unsave", c.RecipeHandler.UnsaveRecipe)
}
