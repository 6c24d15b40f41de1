package queue

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"AreejShop/internal/model"
	"AreejShop/pkg/logger"
	"AreejShop/pkg/snowflake"
	"AreejShop/storage/mq"
)

// PublishOrderCreated 发布订单创建事件，worker 消费后更新客户档案并通知店主
func PublishOrderCreated(order *model.Order) error {
	messageID, err := snowflake.NextID()
	if err != nil {
		return fmt.Errorf("failed to generate message id: %w", err)
	}

	msg := model.OrderCreatedMessage{
		MessageID:     strconv.FormatInt(messageID, 10),
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		Total:         order.Total,
		CustomerName:  order.Customer.Name,
		CustomerPhone: order.Customer.Phone,
		CustomerEmail: order.Customer.Email,
		CustomerCity:  order.Customer.City,
		CustomerAddr:  order.Customer.Address,
		CreatedAt:     time.Now().Format(time.RFC3339),
	}

	if err := mq.PublishMessage(mq.EventsExchange, mq.OrderCreatedRoutingKey, msg); err != nil {
		return fmt.Errorf("failed to publish order created event: %w", err)
	}

	logger.Logger.Info("Order created event published",
		zap.String("order_number", order.OrderNumber),
		zap.String("message_id", msg.MessageID),
	)
	return nil
}

// PublishAttendanceSummary 发布考勤日报事件
func PublishAttendanceSummary(summary model.AttendanceSummaryMessage) error {
	if summary.MessageID == "" {
		messageID, err := snowflake.NextID()
		if err != nil {
			return fmt.Errorf("failed to generate message id: %w", err)
		}
		summary.MessageID = strconv.FormatInt(messageID, 10)
	}
	if summary.ScheduledAt == "" {
		summary.ScheduledAt = time.Now().Format(time.RFC3339)
	}

	if err := mq.PublishMessage(mq.EventsExchange, mq.AttendanceSummaryRoutingKey, summary); err != nil {
		return fmt.Errorf("failed to publish attendance summary: %w", err)
	}

	logger.Logger.Info("Attendance summary published",
		zap.String("date", summary.Date),
		zap.String("message_id", summary.MessageID),
	)
	return nil
}
