package model

// OrderCreatedMessage 订单创建事件。
// worker 消费后更新客户档案聚合，并通知店主。
// MessageID 用于消费端幂等性检查（Redis SETNX）
type OrderCreatedMessage struct {
	MessageID     string  `json:"message_id"`
	OrderID       int64   `json:"order_id"`
	OrderNumber   string  `json:"order_number"`
	Total         float64 `json:"total"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail string  `json:"customer_email"`
	CustomerCity  string  `json:"customer_city"`
	CustomerAddr  string  `json:"customer_address"`
	CreatedAt     string  `json:"created_at"`
}

// AttendanceSummaryMessage 考勤日报事件，调度器在换日时发布前一天的汇总
type AttendanceSummaryMessage struct {
	MessageID    string `json:"message_id"`
	Date         string `json:"date"`
	TotalWorkers int64  `json:"total_workers"`
	CheckedIn    int64  `json:"checked_in"`
	ViaQR        int64  `json:"via_qr"`
	ViaManual    int64  `json:"via_manual"`
	ScheduledAt  string `json:"scheduled_at"`
}
