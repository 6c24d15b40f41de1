package model

// Settings 店铺设置，单行表
type Settings struct {
	BaseModel
	StoreName          string  `gorm:"type:varchar(128);not null;default:'أريج الأخوان'" json:"store_name"`
	StoreNameEn        string  `gorm:"type:varchar(128);not null;default:'Areej Al Aqhwan'" json:"store_name_en"`
	StoreDescription   string  `gorm:"type:text;not null;default:'متجر الزهور والهدايا الفاخرة'" json:"store_description"`
	StoreDescriptionEn string  `gorm:"type:text;not null;default:'Premium Flower and Gift Shop'" json:"store_description_en"`
	Phone              string  `gorm:"type:varchar(32);not null;default:''" json:"phone"`
	Email              string  `gorm:"type:varchar(128);not null;default:''" json:"email"`
	Address            string  `gorm:"type:varchar(256);not null;default:''" json:"address"`
	City               string  `gorm:"type:varchar(64);not null;default:''" json:"city"`
	VATEnabled         bool    `gorm:"not null;default:true" json:"vat_enabled"`
	VATPercentage      float64 `gorm:"not null;default:15" json:"vat_percentage"`
	Currency           string  `gorm:"type:varchar(8);not null;default:'SAR'" json:"currency"`
	InvoicePrefix      string  `gorm:"type:varchar(8);not null;default:'INV'" json:"invoice_prefix"`
	Logo               string  `gorm:"type:varchar(256);not null;default:''" json:"logo"`
	Banner             string  `gorm:"type:varchar(256);not null;default:''" json:"banner"`

	Instagram        string `gorm:"type:varchar(128);not null;default:''" json:"instagram"`
	InstagramEnabled bool   `gorm:"not null;default:false" json:"instagram_enabled"`
	Facebook         string `gorm:"type:varchar(128);not null;default:''" json:"facebook"`
	FacebookEnabled  bool   `gorm:"not null;default:false" json:"facebook_enabled"`
	Twitter          string `gorm:"type:varchar(128);not null;default:''" json:"twitter"`
	TwitterEnabled   bool   `gorm:"not null;default:false" json:"twitter_enabled"`
	Pinterest        string `gorm:"type:varchar(128);not null;default:''" json:"pinterest"`
	PinterestEnabled bool   `gorm:"not null;default:false" json:"pinterest_enabled"`
	TikTok           string `gorm:"type:varchar(128);not null;default:''" json:"tiktok"`
	TikTokEnabled    bool   `gorm:"not null;default:false" json:"tiktok_enabled"`
	Snapchat         string `gorm:"type:varchar(128);not null;default:''" json:"snapchat"`
	SnapchatEnabled  bool   `gorm:"not null;default:false" json:"snapchat_enabled"`

	DefaultLanguage string `gorm:"type:varchar(2);not null;default:'ar'" json:"default_language"` // ar, en
}

func (Settings) TableName() string {
	return "settings"
}
