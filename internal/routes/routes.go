package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	handler "bank-reconciliation-backend/internal/handlers"
	"bank-reconciliation-backend/internal/repository"
	service "bank-reconciliation-backend/internal/services/reconciliation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *logrus.Logger) {
	store := repository.NewStore(db)
	audit := repository.NewActivityLogRepository(db)

	reconService := service.NewService(store, audit, logger)
	reconHandler := handler.NewReconciliationHandler(reconService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	recon := api.Group("/reconciliation")
	recon.GET("", reconHandler.GetSummary)
	recon.PUT("", reconHandler.Reconcile)
	recon.POST("/match", reconHandler.Match)
	recon.DELETE("/match", reconHandler.Unmatch)
	recon.POST("/reject", reconHandler.Reject)
	recon.GET("/unmatched", reconHandler.ListUnmatched)
	recon.GET("/history/:accountId", reconHandler.History)

	statements := api.Group("/statements")
	{
		statements.POST("", reconHandler.CreateStatement)
	}
}
