package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"AreejShop/internal/cache"
	"AreejShop/internal/model"
	"AreejShop/internal/service"
	"AreejShop/pkg/logger"
	"AreejShop/pkg/sms"
	"AreejShop/storage/mq"
)

// 消费侧的依赖拆成小接口，测试注入假实现
type orderApplier interface {
	ApplyOrder(ctx context.Context, msg model.OrderCreatedMessage) error
}

type settingsSource interface {
	GetSettings(ctx context.Context) (*model.Settings, error)
}

type messageMarker interface {
	TryMark(ctx context.Context, messageID string) (bool, error)
	Unmark(ctx context.Context, messageID string) error
	MarkDone(ctx context.Context, messageID string) error
}

type ownerNotifier interface {
	OrderCreated(ctx context.Context, phone, orderNumber string, total float64) error
	AttendanceSummary(ctx context.Context, phone, date string, checkedIn, totalWorkers int64) error
}

// Consumer 挂着两个队列的消费逻辑：
// 订单创建（客户档案聚合 + 店主通知）和考勤日报（店主汇总短信）
type Consumer struct {
	orders   orderApplier
	settings settingsSource
	marks    messageMarker
	notify   ownerNotifier
}

var (
	consumerOnce     sync.Once
	consumerInstance *Consumer
)

func Default() *Consumer {
	consumerOnce.Do(func() {
		consumerInstance = &Consumer{
			orders:   service.Customer(),
			settings: service.Settings(),
			marks:    redisMessageMarker{},
			notify:   smsOwnerNotifier{},
		}
	})
	return consumerInstance
}

// StartOrderCreatedConsumer 阻塞消费订单创建事件，直到 ctx 取消
func StartOrderCreatedConsumer(ctx context.Context) error {
	return Default().RunOrderCreated(ctx)
}

// StartAttendanceSummaryConsumer 阻塞消费考勤日报事件，直到 ctx 取消
func StartAttendanceSummaryConsumer(ctx context.Context) error {
	return Default().RunAttendanceSummary(ctx)
}

func (w *Consumer) RunOrderCreated(ctx context.Context) error {
	return mq.Consume(mq.ConsumeOptions{
		Ctx:           ctx,
		Queue:         mq.OrderCreatedQueue,
		ConsumerTag:   "areej-worker-orders",
		PrefetchCount: 8,
		Handler: func(body []byte) error {
			return w.handleOrderCreated(ctx, body)
		},
	})
}

func (w *Consumer) RunAttendanceSummary(ctx context.Context) error {
	return mq.Consume(mq.ConsumeOptions{
		Ctx:           ctx,
		Queue:         mq.AttendanceSummaryQueue,
		ConsumerTag:   "areej-worker-attendance",
		PrefetchCount: 4,
		Handler: func(body []byte) error {
			return w.handleAttendanceSummary(ctx, body)
		},
	})
}

func (w *Consumer) handleOrderCreated(ctx context.Context, body []byte) error {
	var msg model.OrderCreatedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		// 解析不了的消息重投也没用，记日志后吞掉
		logger.Logger.Error("Invalid order created message", zap.Error(err), zap.ByteString("body", body))
		return nil
	}

	acquired, err := w.marks.TryMark(ctx, msg.MessageID)
	if err != nil {
		return fmt.Errorf("failed to check message idempotency: %w", err)
	}
	if !acquired {
		logger.Logger.Info("Order message already processed, skipping",
			zap.String("message_id", msg.MessageID),
		)
		return nil
	}

	if err := w.orders.ApplyOrder(ctx, msg); err != nil {
		if unmarkErr := w.marks.Unmark(ctx, msg.MessageID); unmarkErr != nil {
			logger.Logger.Error("Failed to release message mark", zap.Error(unmarkErr))
		}
		return err
	}

	// 通知失败不触发重投，客户聚合已经落库
	w.notifyOwnerOrderCreated(ctx, msg)

	if err := w.marks.MarkDone(ctx, msg.MessageID); err != nil {
		logger.Logger.Warn("Failed to persist processed mark", zap.Error(err))
	}
	return nil
}

func (w *Consumer) notifyOwnerOrderCreated(ctx context.Context, msg model.OrderCreatedMessage) {
	settings, err := w.settings.GetSettings(ctx)
	if err != nil {
		logger.Logger.Warn("Failed to load settings for notification", zap.Error(err))
		return
	}

	if err := w.notify.OrderCreated(ctx, settings.Phone, msg.OrderNumber, msg.Total); err != nil {
		logger.Logger.Warn("Order notification failed",
			zap.String("order_number", msg.OrderNumber),
			zap.Error(err),
		)
	}
}

func (w *Consumer) handleAttendanceSummary(ctx context.Context, body []byte) error {
	var msg model.AttendanceSummaryMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		logger.Logger.Error("Invalid attendance summary message", zap.Error(err), zap.ByteString("body", body))
		return nil
	}

	acquired, err := w.marks.TryMark(ctx, msg.MessageID)
	if err != nil {
		return fmt.Errorf("failed to check message idempotency: %w", err)
	}
	if !acquired {
		logger.Logger.Info("Summary message already processed, skipping",
			zap.String("message_id", msg.MessageID),
		)
		return nil
	}

	settings, err := w.settings.GetSettings(ctx)
	if err != nil {
		if unmarkErr := w.marks.Unmark(ctx, msg.MessageID); unmarkErr != nil {
			logger.Logger.Error("Failed to release message mark", zap.Error(unmarkErr))
		}
		return err
	}

	if err := w.notify.AttendanceSummary(ctx, settings.Phone, msg.Date, msg.CheckedIn, msg.TotalWorkers); err != nil {
		logger.Logger.Warn("Attendance summary notification failed",
			zap.String("date", msg.Date),
			zap.Error(err),
		)
	}

	if err := w.marks.MarkDone(ctx, msg.MessageID); err != nil {
		logger.Logger.Warn("Failed to persist processed mark", zap.Error(err))
	}
	return nil
}

// Redis 幂等标记的默认实现
type redisMessageMarker struct{}

func (redisMessageMarker) TryMark(ctx context.Context, messageID string) (bool, error) {
	return cache.TryMarkMessageProcessing(ctx, messageID)
}

func (redisMessageMarker) Unmark(ctx context.Context, messageID string) error {
	return cache.UnmarkMessageProcessing(ctx, messageID)
}

func (redisMessageMarker) MarkDone(ctx context.Context, messageID string) error {
	return cache.MarkMessageProcessed(ctx, messageID)
}

// 短信通知的默认实现
type smsOwnerNotifier struct{}

func (smsOwnerNotifier) OrderCreated(ctx context.Context, phone, orderNumber string, total float64) error {
	return sms.NotifyOrderCreated(ctx, phone, orderNumber, total)
}

func (smsOwnerNotifier) AttendanceSummary(ctx context.Context, phone, date string, checkedIn, totalWorkers int64) error {
	return sms.NotifyAttendanceSummary(ctx, phone, date, checkedIn, totalWorkers)
}
