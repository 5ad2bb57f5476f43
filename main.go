package main

import (
	"log"
	"net/http"

	"hms/config"
	"hms/jobs"
	"hms/routes"
	"hms/services"
	"hms/services/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()

	router, m, c := config.InitApp()

	dataStore, err := config.NewStoreFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	hotelService, err := services.NewHotelService(services.HotelServiceOptions{
		Store:  dataStore,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	if err != nil {
		log.Fatalf("Failed to initialize hotel service: %v", err)
	}

	redisClient, err := config.ConnectRedis()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	if err := jobs.InitCronJobs(c, m, hotelService); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, hotelService, redisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := config.GetEnvDefault("PORT", "8083")

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
