package config

import (
	"os"
	"time"

	"family-hub-backend/internal/api/handlers"
	"family-hub-backend/internal/api/routes"
	"family-hub-backend/internal/jobs"
	"family-hub-backend/internal/middleware"
	"family-hub-backend/internal/utils"
	"family-hub-backend/internal/utils/logging"
	"family-hub-backend/internal/utils/storage"
	"family-hub-backend/pkg/activity"
	"family-hub-backend/pkg/calendar"
	"family-hub-backend/pkg/grocery"
	"family-hub-backend/pkg/jwt"
	"family-hub-backend/pkg/meal"
	"family-hub-backend/pkg/pantry"
	"family-hub-backend/pkg/preference"
	"family-hub-backend/pkg/suggestion"
	"family-hub-backend/pkg/task"
	"family-hub-backend/pkg/user"
	"family-hub-backend/pkg/waste"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

func NewApp(db *mongo.Database) (*fiber.App, error) {
	utils.InitValidator()
	logging.InitLogger()
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
		"./logs/access.log",
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

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	taskRepository := task.NewTaskRepository(db)
	mealRepository := meal.NewMealRepository(db)
	calendarRepository := calendar.NewCalendarRepository(db)
	pantryRepository := pantry.NewPantryRepository(db)
	groceryRepository := grocery.NewGroceryRepository(db)
	wasteRepository := waste.NewWasteRepository(db)
	activityRepository := activity.NewActivityRepository(db)
	preferenceRepository := preference.NewPreferenceRepository(db)

	// External clients
	geminiClient := suggestion.NewGeminiClient()
	spoonacularClient := suggestion.NewSpoonacularClient()

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	calendarService := calendar.NewCalendarService(calendarRepository, taskRepository, mealRepository)
	taskService := task.NewTaskService(taskRepository, calendarService)
	mealService := meal.NewMealService(mealRepository, calendarService, spoonacularClient, pantryRepository, preferenceRepository)
	pantryService := pantry.NewPantryService(pantryRepository)
	groceryService := grocery.NewGroceryService(groceryRepository, pantryRepository, mealRepository)
	wasteService := waste.NewWasteService(wasteRepository)
	activityService := activity.NewActivityService(activityRepository, s3)
	preferenceService := preference.NewPreferenceService(preferenceRepository)
	suggestionService := suggestion.NewSuggestionService(geminiClient, spoonacularClient, pantryRepository, preferenceRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	taskHandler := handlers.NewTaskHandler(taskService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	calendarHandler := handlers.NewCalendarHandler(calendarService, validator)
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	groceryHandler := handlers.NewGroceryHandler(groceryService, validator)
	wasteHandler := handlers.NewWasteHandler(wasteService, validator)
	activityHandler := handlers.NewActivityHandler(activityService, validator)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService, validator)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService, validator)

	// Jobs
	expiryDigest := jobs.NewExpiryDigestJob(pantryRepository, userRepository)
	if _, err := expiryDigest.Start(); err != nil {
		return nil, err
	}

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		TaskHandler:       taskHandler,
		MealHandler:       mealHandler,
		CalendarHandler:   calendarHandler,
		PantryHandler:     pantryHandler,
		GroceryHandler:    groceryHandler,
		WasteHandler:      wasteHandler,
		ActivityHandler:   activityHandler,
		PreferenceHandler: preferenceHandler,
		SuggestionHandler: suggestionHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}

	routesConfig.Setup()

	return app, nil
}
