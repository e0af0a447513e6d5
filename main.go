package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gymmats-store/gymmats-api/database"
	"github.com/gymmats-store/gymmats-api/middleware"
	"github.com/gymmats-store/gymmats-api/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init store. A dead database is not fatal: the server still comes up
	// and store-backed endpoints answer 500 until it recovers.
	store, err := database.Connect(context.Background())
	if err != nil {
		log.Printf("❌ MongoDB connection failed: %v", err)
		log.Println("⚠️  Running without a database")
	} else {
		log.Println("✅ Connected to MongoDB")
	}

	// Gin setup
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, store)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
