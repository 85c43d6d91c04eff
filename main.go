package main

import (
	"GuardianMobile/config"
	"GuardianMobile/controllers"
	"GuardianMobile/middlewares"
	"GuardianMobile/repositories/impl"
	"GuardianMobile/routes"
	"GuardianMobile/services"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Initialize Firebase (Firestore + FCM)
	config.InitFirebase()

	// Initialize repositories
	deviceRepo := impl.NewDeviceRepository(config.FirestoreClient)
	notificationRepo := impl.NewNotificationRepository(config.FirestoreClient)
	usageRepo := impl.NewUsageRepository(config.FirestoreClient)
	taskRepo := impl.NewTaskRepository(config.FirestoreClient)
	telemetryRepo := impl.NewTelemetryRepository(config.FirestoreClient)

	// Initialize services
	rps, burst := config.PushRateLimit()
	pushService, err := services.NewPushService(config.FirebaseApp, rps, burst)
	if err != nil {
		log.Fatalf("error initializing push service: %v\n", err)
	}

	deviceService := services.NewDeviceService(deviceRepo)
	notificationService := services.NewNotificationService(deviceRepo, notificationRepo, pushService)
	screenTimeService := services.NewScreenTimeService(usageRepo, notificationService)
	taskService := services.NewTaskService(taskRepo, deviceRepo, notificationService)
	telemetryService := services.NewTelemetryService(telemetryRepo)

	// Set services in controllers
	controllers.SetDeviceService(deviceService)
	controllers.SetNotificationService(notificationService)
	controllers.SetScreenTimeService(screenTimeService)
	controllers.SetTaskService(taskService)
	controllers.SetTelemetryService(telemetryService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(cors.Default())

	// Register routes
	routes.RegisterRoutes(r)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	r.Run(":" + port)
}
