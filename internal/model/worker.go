package model

// Worker 员工账号。IsActive 为 false 时禁止登录，
// PageAccess 控制后台各页面的访问权限
type Worker struct {
	BaseModel
	Name         string     `gorm:"type:varchar(64);not null" json:"name"`
	Phone        string     `gorm:"type:varchar(32);not null" json:"phone"`
	Email        string     `gorm:"uniqueIndex;type:varchar(128);not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(128);not null" json:"-"`
	PageAccess   StringList `gorm:"type:jsonb;default:'[]'" json:"page_access"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
}

func (Worker) TableName() string {
	return "workers"
}
