package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics OpenTelemetry 指标集合
type OTelMetrics struct {
	// 考勤相关指标
	CheckInTotal         metric.Int64Counter
	CheckInRejectedTotal metric.Int64Counter

	// 订单相关指标
	OrderCreatedTotal metric.Int64Counter
	OrderRevenueTotal metric.Float64Counter

	// 短信相关指标
	SMSSentTotal    metric.Int64Counter
	SMSSendDuration metric.Float64Histogram
}

var (
	metrics *OTelMetrics
	meter   = otel.Meter("areejshop")
)

// InitMetrics 初始化 OpenTelemetry 指标
func InitMetrics() error {
	var err error

	metrics = &OTelMetrics{}

	metrics.CheckInTotal, err = meter.Int64Counter(
		"attendance_checkin_total",
		metric.WithDescription("Total number of recorded check-ins"),
		metric.WithUnit("{checkin}"),
	)
	if err != nil {
		return err
	}

	metrics.CheckInRejectedTotal, err = meter.Int64Counter(
		"attendance_checkin_rejected_total",
		metric.WithDescription("Total number of rejected check-in attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return err
	}

	metrics.OrderCreatedTotal, err = meter.Int64Counter(
		"orders_created_total",
		metric.WithDescription("Total number of created orders"),
		metric.WithUnit("{order}"),
	)
	if err != nil {
		return err
	}

	metrics.OrderRevenueTotal, err = meter.Float64Counter(
		"orders_revenue_total",
		metric.WithDescription("Total revenue of created orders"),
		metric.WithUnit("{currency}"),
	)
	if err != nil {
		return err
	}

	metrics.SMSSentTotal, err = meter.Int64Counter(
		"sms_sent_total",
		metric.WithDescription("Total number of SMS sent"),
		metric.WithUnit("{sms}"),
	)
	if err != nil {
		return err
	}

	metrics.SMSSendDuration, err = meter.Float64Histogram(
		"sms_send_duration_seconds",
		metric.WithDescription("Time spent sending SMS in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	return nil
}

// GetMetrics 获取全局指标实例，未初始化时返回 nil，调用方需判空
func GetMetrics() *OTelMetrics {
	return metrics
}

// RecordCheckIn 记录一次成功签到
func (m *OTelMetrics) RecordCheckIn(ctx context.Context, method string) {
	m.CheckInTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
	))
}

// RecordCheckInRejected 记录一次被拒绝的签到尝试
func (m *OTelMetrics) RecordCheckInRejected(ctx context.Context, reason string) {
	m.CheckInRejectedTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

// RecordOrderCreated 记录一笔新订单
func (m *OTelMetrics) RecordOrderCreated(ctx context.Context, total float64) {
	m.OrderCreatedTotal.Add(ctx, 1)
	m.OrderRevenueTotal.Add(ctx, total)
}

// RecordSMSSent 记录短信发送结果
func (m *OTelMetrics) RecordSMSSent(ctx context.Context, template, provider, status string, duration float64) {
	m.SMSSentTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("template", template),
		attribute.String("provider", provider),
		attribute.String("status", status),
	))
	m.SMSSendDuration.Record(ctx, duration, metric.WithAttributes(
		attribute.String("template", template),
		attribute.String("provider", provider),
	))
}
