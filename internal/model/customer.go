package model

// LoyaltyTier 客户等级枚举
type LoyaltyTier string

const (
	LoyaltyBronze   LoyaltyTier = "bronze"
	LoyaltySilver   LoyaltyTier = "silver"
	LoyaltyGold     LoyaltyTier = "gold"
	LoyaltyPlatinum LoyaltyTier = "platinum"
)

// TierForSpent 按累计消费额计算客户等级
func TierForSpent(totalSpent float64) LoyaltyTier {
	switch {
	case totalSpent >= 5000:
		return LoyaltyPlatinum
	case totalSpent >= 2000:
		return LoyaltyGold
	case totalSpent >= 500:
		return LoyaltySilver
	default:
		return LoyaltyBronze
	}
}

// Customer 客户档案，按手机号聚合订单数据
type Customer struct {
	BaseModel
	Name          string      `gorm:"type:varchar(64);not null" json:"name"`
	Phone         string      `gorm:"uniqueIndex;type:varchar(32);not null" json:"phone"`
	Email         string      `gorm:"type:varchar(128);not null;default:''" json:"email"`
	City          string      `gorm:"type:varchar(64);not null;default:''" json:"city"`
	Address       string      `gorm:"type:varchar(256);not null;default:''" json:"address"`
	TotalOrders   int         `gorm:"not null;default:0" json:"total_orders"`
	TotalSpent    float64     `gorm:"not null;default:0" json:"total_spent"`
	LoyaltyTier   LoyaltyTier `gorm:"type:varchar(16);not null;default:'bronze'" json:"loyalty_tier"`
	LoyaltyPoints int         `gorm:"not null;default:0" json:"loyalty_points"`
	Notes         string      `gorm:"type:text;not null;default:''" json:"notes"`
}

func (Customer) TableName() string {
	return "customers"
}
