package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	"AreejShop/config"
	"AreejShop/internal/cache"
	"AreejShop/internal/queue"
	"AreejShop/internal/service"
	"AreejShop/pkg/logger"
	"AreejShop/pkg/qrtoken"
	"AreejShop/utils"
)

const rolloverLockTTL = 10 * time.Minute

// RunAttendanceScheduler 换日调度循环：每个本地午夜发布前一天的考勤日报，
// 并预热新一天的考勤码。阻塞直到 ctx 取消
func RunAttendanceScheduler(ctx context.Context) {
	// 启动时先预热当天的码，服务重启不影响扫码
	warmDailyQR(ctx)

	for {
		now := time.Now()
		next := utils.NextMidnight(now)
		timer := time.NewTimer(next.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Logger.Info("Attendance scheduler stopped")
			return
		case <-timer.C:
			rollover(ctx)
		}
	}
}

// rollover 执行一次换日任务。分布式锁保证多实例部署时只跑一份
func rollover(ctx context.Context) {
	yesterday := time.Now().AddDate(0, 0, -1).Format(qrtoken.DateLayout)

	acquired, err := cache.TryLock(ctx, "attendance:rollover:"+yesterday, rolloverLockTTL)
	if err != nil {
		logger.Logger.Error("Failed to acquire rollover lock", zap.Error(err))
		return
	}
	if !acquired {
		logger.Logger.Info("Rollover already handled by another instance",
			zap.String("date", yesterday),
		)
		warmDailyQR(ctx)
		return
	}

	publishSummary(ctx, yesterday)
	warmDailyQR(ctx)
}

func publishSummary(ctx context.Context, date string) {
	summary, err := service.Attendance().Summarize(ctx, date)
	if err != nil {
		logger.Logger.Error("Failed to summarize attendance",
			zap.String("date", date),
			zap.Error(err),
		)
		return
	}

	totalWorkers, err := service.Worker().CountActive(ctx)
	if err != nil {
		logger.Logger.Warn("Failed to count active workers", zap.Error(err))
	}
	summary.TotalWorkers = totalWorkers

	if err := queue.PublishAttendanceSummary(summary); err != nil {
		logger.Logger.Error("Failed to publish attendance summary",
			zap.String("date", date),
			zap.Error(err),
		)
	}
}

func warmDailyQR(ctx context.Context) {
	date := qrtoken.Today()
	value := qrtoken.Generate(config.Cfg.QRSecret, date)
	if err := cache.SetDailyQR(ctx, date, value); err != nil {
		logger.Logger.Warn("Failed to warm daily QR cache",
			zap.String("date", date),
			zap.Error(err),
		)
		return
	}
	logger.Logger.Info("Daily QR warmed", zap.String("date", date))
}
