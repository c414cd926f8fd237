package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/modorcea/rentacar-backend/internal/database"
	"github.com/modorcea/rentacar-backend/internal/handlers"
	"github.com/modorcea/rentacar-backend/internal/middleware"
	"github.com/modorcea/rentacar-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Redis is optional; without it login rate limiting is disabled
	if err := services.InitRedis(); err != nil {
		log.Printf("Redis initialization warning: %v (login rate limiting disabled)", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize WebSocket hub for the admin reservation feed
	hub := services.NewHub()
	go hub.Run()

	mailer := services.NewSMTPMailer()

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Serve locally stored car images
	r.Static("/uploads", "./uploads")

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Welcome to the AutoRent reservation API")
	})

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		api.POST("/register", handlers.Register(db))
		api.POST("/login", middleware.LoginRateLimit(), handlers.Login(db))
		api.POST("/search", handlers.SearchCars(db))
		api.GET("/allcars", handlers.GetAllCars(db))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/book", handlers.BookCar(db, mailer, hub))
			protected.POST("/reservations", handlers.GetUserReservations(db))

			// Admin-only listings and the live reservation feed
			adminOnly := protected.Group("/")
			adminOnly.Use(middleware.AdminOnly(db))
			{
				adminOnly.GET("/allreservations", handlers.GetAllReservations(db))
				adminOnly.GET("/allusers", handlers.GetAllUsers(db))
				adminOnly.DELETE("/users", handlers.DeleteUser(db))
				adminOnly.GET("/ws", handlers.WebSocketHandler(hub))
			}
		}
	}

	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.POST("/check", handlers.CheckUserReservations(db))
		user.PUT("/verify", handlers.VerifyReservation(db, mailer, hub))
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/check", handlers.CheckAdmin(db))

		cars := admin.Group("/cars")
		cars.Use(middleware.AdminOnly(db))
		{
			cars.POST("", handlers.AddCar(db))
			cars.PUT("", handlers.UpdateCar(db))
			cars.POST("/image", handlers.UploadCarImage())
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
