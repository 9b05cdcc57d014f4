package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/rentalkita/rentalkita-backend/internal/database"
	"github.com/rentalkita/rentalkita-backend/internal/handlers"
	"github.com/rentalkita/rentalkita-backend/internal/middleware"
	"github.com/rentalkita/rentalkita-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := database.InitDB()
	if err != nil {
		zap.S().Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		zap.S().Fatalf("Failed to run migrations: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Redis backs the catalog page cache only; the API runs without it.
	if err := services.InitRedis(); err != nil {
		zap.S().Warnf("Redis initialization warning: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		zap.S().Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize router
	r := gin.Default()
	r.Use(middleware.RequestLogger())

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	// Locally stored documents are served straight from the upload dir
	if !services.IsUsingS3() {
		uploadDir := os.Getenv("UPLOAD_DIR")
		if uploadDir == "" {
			uploadDir = "/app/uploads"
		}
		r.Static("/uploads", uploadDir)
	}

	// Routes
	api := r.Group("/api")
	{
		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", handlers.ListVehicles(db))
			vehicles.GET("/:id", handlers.GetVehicle(db))
			vehicles.GET("/:id/quote", handlers.GetRentalQuote(db))
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", handlers.CreateBooking(db))
			bookings.GET("/:id", handlers.GetBookingStatus(db))
		}

		api.POST("/uploads", handlers.UploadDocument())
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		zap.S().Fatalf("Failed to start server: %v", err)
	}
}
