package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"AreejShop/config"
	"AreejShop/internal/worker"
	"AreejShop/pkg/logger"
	"AreejShop/pkg/metrics"
	"AreejShop/pkg/sms"
	"AreejShop/pkg/snowflake"
	"AreejShop/storage"
)

func main() {
	config.Init()

	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Logger.Info("Received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer storage.Close()

	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake", zap.Error(err))
	}

	if err := sms.Init(); err != nil {
		logger.Logger.Warn("Failed to initialize SMS service", zap.Error(err))
		logger.Logger.Info("SMS service will be disabled, owner notifications may not work")
	}

	if err := metrics.InitMetrics(); err != nil {
		logger.Logger.Warn("Failed to initialize business metrics", zap.Error(err))
	}

	logger.Logger.Info("Worker service starting",
		zap.String("service", "areejshop-worker"),
		zap.String("environment", config.Cfg.Environment),
	)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := worker.StartOrderCreatedConsumer(ctx); err != nil {
			logger.Logger.Error("Order created consumer exited", zap.Error(err))
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := worker.StartAttendanceSummaryConsumer(ctx); err != nil {
			logger.Logger.Error("Attendance summary consumer exited", zap.Error(err))
			cancel()
		}
	}()

	<-ctx.Done()
	wg.Wait()

	logger.Logger.Info("Worker service shutting down gracefully")
}
