package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/dwarvesf/payout-backend/internal/handler/admin"
	"github.com/dwarvesf/payout-backend/internal/handler/metrics"
	"github.com/dwarvesf/payout-backend/internal/handler/withdrawal"
	"github.com/dwarvesf/payout-backend/internal/store"
	"github.com/dwarvesf/payout-backend/internal/utils/config"
	"github.com/dwarvesf/payout-backend/internal/utils/logger"
)

type Handler struct {
	WithdrawalHandler withdrawal.IHandler
	AdminHandler      admin.IHandler
	MetricsHandler    *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	enqueuer withdrawal.Enqueuer,
	db *gorm.DB,
	s *store.Store,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		WithdrawalHandler: withdrawal.New(enqueuer, logger, appConfig),
		AdminHandler:      admin.New(db, s, logger),
		MetricsHandler:    metrics.NewMetricsHandler(metricsRegistry),
	}
}
