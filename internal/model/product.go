package model

// DiscountType 折扣类型
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Product 商品，名称与描述均为双语
type Product struct {
	BaseModel
	Name          string       `gorm:"type:varchar(128);not null" json:"name"`
	NameAr        string       `gorm:"type:varchar(128);not null" json:"name_ar"`
	Description   string       `gorm:"type:text;not null;default:''" json:"description"`
	DescriptionAr string       `gorm:"type:text;not null;default:''" json:"description_ar"`
	Price         float64      `gorm:"not null" json:"price"`
	Category      string       `gorm:"type:varchar(64);not null;default:'عام';index" json:"category"`
	Images        StringList   `gorm:"type:jsonb;default:'[]'" json:"images"`
	InStock       bool         `gorm:"not null;default:true" json:"in_stock"`
	Featured      bool         `gorm:"not null;default:false;index" json:"featured"`
	Discount      float64      `gorm:"not null;default:0" json:"discount"`
	DiscountType  DiscountType `gorm:"type:varchar(16);not null;default:'percentage'" json:"discount_type"`
}

func (Product) TableName() string {
	return "products"
}
