package http

import (
	"github.com/gin-gonic/gin"

	"github.com/dwarvesf/payout-backend/internal/handler"
	"github.com/dwarvesf/payout-backend/internal/utils/config"
	"github.com/dwarvesf/payout-backend/internal/utils/logger"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler, appConfig *config.AppConfig, logger *logger.Logger) {
	v1 := r.Group("/api/v1")

	withdrawals := v1.Group("/withdrawals")
	{
		withdrawals.POST("", h.WithdrawalHandler.CreateWithdrawal)
	}

	admin := v1.Group("/admin")
	{
		admin.POST("/contracts/:id/activate", h.AdminHandler.ActivateContract)
	}

	// health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "ok",
		})
	})

	r.GET("/metrics", h.MetricsHandler.Handler())
}
