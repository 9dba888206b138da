package routes

import (
	"family-hub-backend/internal/api/handlers"
	"family-hub-backend/internal/middleware"
	"family-hub-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	TaskHandler       handlers.TaskHandler
	MealHandler       handlers.MealHandler
	CalendarHandler   handlers.CalendarHandler
	PantryHandler     handlers.PantryHandler
	GroceryHandler    handlers.GroceryHandler
	WasteHandler      handlers.WasteHandler
	ActivityHandler   handlers.ActivityHandler
	PreferenceHandler handlers.PreferenceHandler
	SuggestionHandler handlers.SuggestionHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Tasks()
	c.Meals()
	c.Calendar()
	c.Pantry()
	c.Grocery()
	c.Waste()
	c.Activities()
	c.Preferences()
	c.Suggestions()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/invite", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.InviteMember)
	}
}

func (c *Config) Tasks() {
	tasks := c.App.Group("/api/v1/tasks", c.Middleware.AuthMiddleware(c.JWTService))

	tasks.Post("", c.TaskHandler.AddTask)
	tasks.Get("", c.TaskHandler.GetTasks)
	tasks.Put("/:id", c.TaskHandler.UpdateTask)
	tasks.Patch("/:id/status", c.TaskHandler.UpdateTaskStatus)
	tasks.Delete("/:id", c.TaskHandler.DeleteTask)
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meal-plan", c.Middleware.AuthMiddleware(c.JWTService))

	meals.Post("", c.MealHandler.AddMealToPlan)
	meals.Get("/week", c.MealHandler.GetWeeklyPlan)
	meals.Post("/generate", c.MealHandler.GenerateMealPlan)
	meals.Delete("/:id", c.MealHandler.DeleteMeal)
}

func (c *Config) Calendar() {
	events := c.App.Group("/api/v1/events", c.Middleware.AuthMiddleware(c.JWTService))

	events.Post("", c.CalendarHandler.AddEvent)
	events.Get("", c.CalendarHandler.GetEvents)
	events.Put("/:id", c.CalendarHandler.UpdateEvent)
	events.Delete("/:id", c.CalendarHandler.DeleteEvent)

	// bulk mirrors
	events.Post("/sync/tasks", c.CalendarHandler.SyncAllTasks)
	events.Post("/sync/meals", c.CalendarHandler.SyncAllMeals)
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry", c.Middleware.AuthMiddleware(c.JWTService))

	pantry.Post("", c.PantryHandler.AddPantryItem)
	pantry.Get("", c.PantryHandler.GetPantryItems)
	pantry.Get("/expiring", c.PantryHandler.GetExpiringItems)
	pantry.Put("/:id", c.PantryHandler.UpdatePantryItem)
	pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)
}

func (c *Config) Grocery() {
	grocery := c.App.Group("/api/v1/grocery", c.Middleware.AuthMiddleware(c.JWTService))

	grocery.Post("", c.GroceryHandler.AddGroceryItem)
	grocery.Get("", c.GroceryHandler.GetGroceryItems)
	grocery.Post("/generate", c.GroceryHandler.GenerateFromMealPlan)
	grocery.Patch("/:id/toggle", c.GroceryHandler.ToggleGroceryItem)
	grocery.Post("/:id/move-to-pantry", c.GroceryHandler.MoveToPantry)
	grocery.Delete("/:id", c.GroceryHandler.DeleteGroceryItem)
}

func (c *Config) Waste() {
	waste := c.App.Group("/api/v1/waste", c.Middleware.AuthMiddleware(c.JWTService))

	waste.Post("", c.WasteHandler.AddWasteEntry)
	waste.Get("", c.WasteHandler.GetWasteLog)
	waste.Get("/stats", c.WasteHandler.GetWasteStats)
	waste.Delete("/:id", c.WasteHandler.DeleteWasteEntry)
}

func (c *Config) Activities() {
	activities := c.App.Group("/api/v1/activities", c.Middleware.AuthMiddleware(c.JWTService))

	activities.Post("/events", c.ActivityHandler.AddEvent)
	activities.Post("/vacations", c.ActivityHandler.AddVacation)
	activities.Post("/bucket-list", c.ActivityHandler.AddBucketListItem)
	activities.Get("", c.ActivityHandler.GetActivities)
	activities.Patch("/:id/status", c.ActivityHandler.UpdateActivityStatus)
	activities.Post("/:id/photo", c.ActivityHandler.UploadActivityPhoto)
	activities.Delete("/:id", c.ActivityHandler.DeleteActivity)
}

func (c *Config) Preferences() {
	preferences := c.App.Group("/api/v1/preferences", c.Middleware.AuthMiddleware(c.JWTService))

	preferences.Get("", c.PreferenceHandler.GetPreferences)
	preferences.Put("/dietary", c.PreferenceHandler.SetDietaryPreferences)
	preferences.Put("/budget", c.PreferenceHandler.SetBudget)
}

func (c *Config) Suggestions() {
	suggestions := c.App.Group("/api/v1/suggestions", c.Middleware.AuthMiddleware(c.JWTService))

	suggestions.Post("/meals", c.SuggestionHandler.SuggestMeals)
	suggestions.Post("/replace", c.SuggestionHandler.ReplaceSuggestion)

	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Get("/search", c.SuggestionHandler.SearchRecipes)
	recipes.Get("/:id", c.SuggestionHandler.GetRecipeInformation)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
