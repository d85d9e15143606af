package router

import (
	"net/http"

	"loyalty/config"
	"loyalty/internal/handler"
	"loyalty/internal/repository"
	"loyalty/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	ledgerRepo := repository.NewLedgerRepository(db)
	rateRepo := repository.NewRateRepository(db, cfg.Points.DefaultRate)

	// Services
	accrualSvc := service.NewAccrualService(ledgerRepo, rateRepo)

	// Handlers
	userHandler := handler.NewUserHandler(accrualSvc)
	transactionHandler := handler.NewTransactionHandler(accrualSvc)
	ratesHandler := handler.NewRatesHandler(accrualSvc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/users", userHandler.Create)
	r.GET("/users/:id", userHandler.Get)

	r.POST("/transactions", transactionHandler.Record)
	r.GET("/transactions/user/:id", transactionHandler.ListForUser)

	points := r.Group("/points")
	{
		points.GET("/rules", ratesHandler.GetRules)
		points.POST("/rules/partner", ratesHandler.SetPartnerRate)
	}

	return r
}
