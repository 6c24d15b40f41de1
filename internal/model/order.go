package model

import "database/sql/driver"

// OrderStatus 订单状态枚举
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus 判断字符串是否是合法的订单状态
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem 下单时的商品快照，商品后续修改不影响历史订单
type OrderItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	NameAr    string  `json:"name_ar"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// OrderItems 订单行数组（JSONB）
type OrderItems []OrderItem

func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		return "[]", nil
	}
	return jsonbValue(items)
}

func (items *OrderItems) Scan(src interface{}) error {
	return jsonbScan(items, src)
}

// OrderCustomer 订单内嵌的收货人信息（JSONB），与客户档案解耦
type OrderCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	City    string `json:"city"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (c OrderCustomer) Value() (driver.Value, error) {
	return jsonbValue(c)
}

func (c *OrderCustomer) Scan(src interface{}) error {
	return jsonbScan(c, src)
}

// Order 店面订单，货到付款
type Order struct {
	BaseModel
	OrderNumber   string        `gorm:"uniqueIndex;type:varchar(32);not null" json:"order_number"`
	Items         OrderItems    `gorm:"type:jsonb;default:'[]'" json:"items"`
	Subtotal      float64       `gorm:"not null" json:"subtotal"`
	VAT           float64       `gorm:"not null;default:0" json:"vat"`
	Total         float64       `gorm:"not null" json:"total"`
	Status        OrderStatus   `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	Customer      OrderCustomer `gorm:"type:jsonb" json:"customer"`
	PaymentMethod string        `gorm:"type:varchar(16);not null;default:'cod'" json:"payment_method"`
}

func (Order) TableName() string {
	return "orders"
}
