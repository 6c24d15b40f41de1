package model

import "database/sql/driver"

// InvoiceItem 发票行
type InvoiceItem struct {
	Name      string  `json:"name"`
	NameAr    string  `json:"name_ar"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// InvoiceItems 发票行数组（JSONB）
type InvoiceItems []InvoiceItem

func (items InvoiceItems) Value() (driver.Value, error) {
	if items == nil {
		return "[]", nil
	}
	return jsonbValue(items)
}

func (items *InvoiceItems) Scan(src interface{}) error {
	return jsonbScan(items, src)
}

// Invoice 线下/柜台销售开具的发票
type Invoice struct {
	BaseModel
	InvoiceNumber string       `gorm:"uniqueIndex;type:varchar(32);not null" json:"invoice_number"`
	CustomerName  string       `gorm:"type:varchar(64);not null" json:"customer_name"`
	CustomerPhone string       `gorm:"type:varchar(32);not null;default:''" json:"customer_phone"`
	CustomerEmail string       `gorm:"type:varchar(128);not null;default:''" json:"customer_email"`
	Items         InvoiceItems `gorm:"type:jsonb;default:'[]'" json:"items"`
	Subtotal      float64      `gorm:"not null" json:"subtotal"`
	Discount      float64      `gorm:"not null;default:0" json:"discount"`
	DiscountType  DiscountType `gorm:"type:varchar(16);not null;default:'fixed'" json:"discount_type"`
	VAT           float64      `gorm:"not null;default:0" json:"vat"`
	VATAmount     float64      `gorm:"not null;default:0" json:"vat_amount"`
	Total         float64      `gorm:"not null" json:"total"`
	Notes         string       `gorm:"type:text;not null;default:''" json:"notes"`
}

func (Invoice) TableName() string {
	return "invoices"
}
