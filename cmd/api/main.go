package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"fundsim/internal/api/handlers"
	"fundsim/internal/api/middleware"
	"fundsim/internal/repository"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	store := buildStore()

	simulateHandler := handlers.NewSimulateHandler(store)
	sectorHandler := handlers.NewSectorHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/simulate/compare", simulateHandler.CompareSimulations)
		api.GET("/simulations/:id", simulateHandler.GetSimulation)

		api.GET("/sectors", sectorHandler.ListSectors)
		api.GET("/modalities", handlers.ListModalities)
		api.GET("/indicators", handlers.ListIndicators)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildStore picks the result store: Redis when REDIS_ADDR is set and
// reachable, in-memory otherwise.
func buildStore() repository.ResultStore {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Printf("REDIS_ADDR not set, using in-memory result store")
		return repository.NewMemoryStore()
	}

	ttl := 24 * time.Hour
	if ttlStr := os.Getenv("RESULT_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			ttl = parsed
		}
	}

	store := repository.NewRedisStore(addr, ttl)
	if err := store.Ping(); err != nil {
		log.Printf("Redis at %s unreachable (%v), using in-memory result store", addr, err)
		return repository.NewMemoryStore()
	}
	log.Printf("Using Redis result store at %s (ttl %s)", addr, ttl)
	return store
}
