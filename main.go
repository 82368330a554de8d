package main

import (
	"log"
	"net/http"
	"os"

	"github.com/jyothi-samberpu/Food-services/config"
	"github.com/jyothi-samberpu/Food-services/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	log.Println("Database connected and migrated successfully")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory: ", err)
	}

	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.Default()

	// CORS for the vendor dashboard origins.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Services Marketplace API",
			"version": "1.0.0",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Venket Food Services API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"vendor":  "/vendor",
				"firm":    "/firm",
				"product": "/product",
			},
		})
	})

	r.GET("/home", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Welcome to Venket Services</h1>"))
	})

	routes.SetupRoutes(r, db, cfg)

	log.Printf("Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
