package main

import (
	"log"
	"os"

	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/db"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/middleware"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Middleware
	r.Use(middleware.CORS())
	r.Use(middleware.LoadUser())

	router.RegisterRoutes(r)

	// Root endpoint
	r.GET("/", func(c *gin.Context) {
		c.String(200, "SocialConnect API is running...")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("SocialConnect server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
