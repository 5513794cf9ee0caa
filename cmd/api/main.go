package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"portfolio-analyzer/internal/api/handlers"
	"portfolio-analyzer/internal/api/middleware"
	"portfolio-analyzer/internal/history"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// History store: SQLite when HISTORY_DB is set, otherwise in-memory.
	keep := history.DefaultKeep
	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			keep = parsed
		}
	}
	var store history.Store
	if dbPath := os.Getenv("HISTORY_DB"); dbPath != "" {
		s, err := history.NewSQLite(dbPath, keep)
		if err != nil {
			log.Fatalf("Failed to open history database %s: %v", dbPath, err)
		}
		store = s
		log.Printf("Using SQLite history store at %s (keep %d)", dbPath, keep)
	} else {
		store = history.NewMemory(keep)
		log.Printf("Using in-memory history store (keep %d)", keep)
	}
	defer store.Close()

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	workers := 0
	if v := os.Getenv("SIM_WORKERS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			workers = parsed
		}
	}
	simulateHandler := handlers.NewSimulateHandler(store, workers)
	historyHandler := handlers.NewHistoryHandler(store)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "Investment Portfolio Analyzer API"})
		})
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/simulations", historyHandler.ListSimulations)
		api.GET("/default-assets", handlers.ListDefaultAssets)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	// Check if static directory exists
	if _, err := os.Stat(staticDir); err == nil {
		// Serve static assets
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			// Don't serve index.html for API routes
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
