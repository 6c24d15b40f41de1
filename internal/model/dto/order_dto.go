package dto

// OrderItemRequest 下单时的商品行
type OrderItemRequest struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name" vd:"len($)>0"`
	NameAr    string  `json:"name_ar"`
	Price     float64 `json:"price" vd:"$>=0"`
	Quantity  int     `json:"quantity" vd:"$>0"`
	Image     string  `json:"image"`
}

// OrderCustomerRequest 收货人信息
type OrderCustomerRequest struct {
	Name    string `json:"name" vd:"len($)>0"`
	Phone   string `json:"phone" vd:"len($)>0"`
	Email   string `json:"email"`
	City    string `json:"city"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// CreateOrderRequest 店面下单请求
type CreateOrderRequest struct {
	Items         []OrderItemRequest   `json:"items" vd:"len($)>0"`
	Subtotal      float64              `json:"subtotal" vd:"$>=0"`
	VAT           float64              `json:"vat"`
	Total         float64              `json:"total" vd:"$>=0"`
	Customer      OrderCustomerRequest `json:"customer"`
	PaymentMethod string               `json:"payment_method"`
}

// UpdateOrderStatusRequest 更新订单状态
type UpdateOrderStatusRequest struct {
	Status string `json:"status" vd:"len($)>0"`
}

// OrderListQuery 订单筛选
type OrderListQuery struct {
	Status      string `query:"status"`
	OrderNumber string `query:"order_number"`
}
