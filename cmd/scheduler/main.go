package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"AreejShop/config"
	"AreejShop/internal/schedule"
	"AreejShop/pkg/logger"
	"AreejShop/pkg/snowflake"
	"AreejShop/storage"
)

func main() {
	config.Init()

	logger.Init()
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Logger.Info("Scheduler received shutdown signal",
			zap.String("signal", sig.String()),
		)
		cancel()
	}()

	if err := storage.Init(); err != nil {
		logger.Logger.Fatal("Failed to initialize storage for scheduler", zap.Error(err))
	}
	defer storage.Close()

	// 与 server/worker 区分 machine ID，避免消息 ID 冲突
	if err := snowflake.Init(config.Cfg.SnowflakeMachineID, config.Cfg.SnowflakeDataCenter); err != nil {
		logger.Logger.Fatal("Failed to initialize snowflake for scheduler", zap.Error(err))
	}

	logger.Logger.Info("Scheduler service starting",
		zap.String("service", "areejshop-scheduler"),
		zap.String("environment", config.Cfg.Environment),
	)

	schedule.RunAttendanceScheduler(ctx)

	logger.Logger.Info("Scheduler service shutting down gracefully")
}
