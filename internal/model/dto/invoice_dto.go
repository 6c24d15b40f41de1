package dto

// InvoiceItemRequest 发票行
type InvoiceItemRequest struct {
	Name      string  `json:"name"`
	NameAr    string  `json:"name_ar"`
	Quantity  int     `json:"quantity" vd:"$>0"`
	UnitPrice float64 `json:"unit_price" vd:"$>=0"`
	Total     float64 `json:"total"`
}

// CreateInvoiceRequest 开具发票
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number"` // 留空时按店铺前缀自动生成
	CustomerName  string               `json:"customer_name" vd:"len($)>0"`
	CustomerPhone string               `json:"customer_phone"`
	CustomerEmail string               `json:"customer_email"`
	Items         []InvoiceItemRequest `json:"items" vd:"len($)>0"`
	Subtotal      float64              `json:"subtotal" vd:"$>=0"`
	Discount      float64              `json:"discount"`
	DiscountType  string               `json:"discount_type"`
	VAT           float64              `json:"vat"`
	VATAmount     float64              `json:"vat_amount"`
	Total         float64              `json:"total" vd:"$>=0"`
	Notes         string               `json:"notes"`
}
