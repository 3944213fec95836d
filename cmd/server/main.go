package main

import (
	"os"
	"time"

	"bank-reconciliation-backend/internal/config"
	"bank-reconciliation-backend/internal/models"
	"bank-reconciliation-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	logger := config.NewLogger()

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, relying on system env")
	}

	db := config.InitDB()

	db.AutoMigrate(
		&models.BankAccount{},
		&models.BankStatement{},
		&models.BankTransaction{},
		&models.JournalEntry{},
		&models.ActivityLog{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
}
