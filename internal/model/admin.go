package model

// Admin 后台管理员账号
type Admin struct {
	BaseModel
	Name         string `gorm:"type:varchar(64);not null" json:"name"`
	Email        string `gorm:"uniqueIndex;type:varchar(128);not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(128);not null" json:"-"`
}

func (Admin) TableName() string {
	return "admins"
}
