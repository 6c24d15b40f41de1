package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"AreejShop/config"
	"AreejShop/pkg/logger"
	"AreejShop/pkg/metrics"
)

// NotifyOrderCreated 给店主发新订单通知
func NotifyOrderCreated(ctx context.Context, ownerPhone, orderNumber string, total float64) error {
	if !config.Cfg.SMSNotifyEnabled {
		return nil
	}
	if ownerPhone == "" {
		logger.Logger.Warn("Owner phone is empty, skipping order notification")
		return nil
	}

	param, err := json.Marshal(map[string]string{
		"order":  orderNumber,
		"amount": fmt.Sprintf("%.2f", total),
	})
	if err != nil {
		return err
	}

	return sendWithMetrics(ctx, ownerPhone, config.Cfg.SMSOrderTemplate, string(param))
}

// NotifyAttendanceSummary 给店主发前一日考勤汇总
func NotifyAttendanceSummary(ctx context.Context, ownerPhone, date string, checkedIn, totalWorkers int64) error {
	if !config.Cfg.SMSNotifyEnabled {
		return nil
	}
	if ownerPhone == "" {
		logger.Logger.Warn("Owner phone is empty, skipping summary notification")
		return nil
	}

	param, err := json.Marshal(map[string]string{
		"date":    date,
		"present": fmt.Sprintf("%d", checkedIn),
		"total":   fmt.Sprintf("%d", totalWorkers),
	})
	if err != nil {
		return err
	}

	return sendWithMetrics(ctx, ownerPhone, config.Cfg.SMSSummaryTemplate, string(param))
}

func sendWithMetrics(ctx context.Context, phone, template, param string) error {
	start := time.Now()
	err := SendSingle(ctx, phone, config.Cfg.SMSSignName, template, param)
	duration := time.Since(start).Seconds()

	status := "success"
	if err != nil {
		status = "failed"
	}
	if m := metrics.GetMetrics(); m != nil {
		m.RecordSMSSent(ctx, template, config.Cfg.SMSProvider, status, duration)
	}

	if err != nil {
		logger.Logger.Error("SMS notification failed",
			zap.String("template", template),
			zap.Error(err),
		)
	}
	return err
}
