package server

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/dwarvesf/payout-backend/internal/evmrpc"
	"github.com/dwarvesf/payout-backend/internal/monitoring"
	"github.com/dwarvesf/payout-backend/internal/orchestrator"
	"github.com/dwarvesf/payout-backend/internal/store"
	pgstore "github.com/dwarvesf/payout-backend/internal/store/postgres"
	"github.com/dwarvesf/payout-backend/internal/transport/http"
	"github.com/dwarvesf/payout-backend/internal/utils/config"
	"github.com/dwarvesf/payout-backend/internal/utils/logger"
	"github.com/dwarvesf/payout-backend/internal/worker"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)
	s := store.New()

	metricsRegistry := prometheus.NewRegistry()
	withdrawalMetrics := monitoring.NewWithdrawalMetrics()
	withdrawalMetrics.MustRegister(metricsRegistry)
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(metricsRegistry)

	orch := orchestrator.New(db, s, func(rpcEndpoint string) (evmrpc.IEvmRPC, error) {
		return evmrpc.New(rpcEndpoint, appConfig, logger)
	}, appConfig, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := worker.New(db, s, orch, withdrawalMetrics, appConfig, logger)
	w.Start(ctx)

	c := cron.New()
	if _, err := c.AddFunc(appConfig.Worker.StuckSweepSchedule, w.SweepStuck); err != nil {
		logger.Error("[Init][AddFunc] invalid sweep schedule", map[string]string{
			"schedule": appConfig.Worker.StuckSweepSchedule,
			"error":    err.Error(),
		})
	} else {
		c.Start()
	}

	httpServer := http.NewHttpServer(appConfig, logger, w, db, s, httpMetrics, metricsRegistry)

	httpServer.Run()
}
