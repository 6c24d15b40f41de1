package dto

// ProductUpsertRequest 创建/更新商品
type ProductUpsertRequest struct {
	Name          string   `json:"name" vd:"len($)>0"`
	NameAr        string   `json:"name_ar" vd:"len($)>0"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"description_ar"`
	Price         float64  `json:"price" vd:"$>=0"`
	Category      string   `json:"category"`
	Images        []string `json:"images"`
	InStock       *bool    `json:"in_stock"`
	Featured      *bool    `json:"featured"`
	Discount      float64  `json:"discount"`
	DiscountType  string   `json:"discount_type"`
}

// ProductListQuery 商品筛选
type ProductListQuery struct {
	Category string `query:"category"`
	Featured *bool  `query:"featured"`
	InStock  *bool  `query:"in_stock"`
}
