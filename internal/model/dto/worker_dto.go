package dto

// WorkerCreateRequest 创建员工账号
type WorkerCreateRequest struct {
	Name       string   `json:"name" vd:"len($)>0"`
	Phone      string   `json:"phone" vd:"len($)>0"`
	Email      string   `json:"email" vd:"len($)>0"`
	Password   string   `json:"password" vd:"len($)>=6"`
	PageAccess []string `json:"page_access"`
	IsActive   *bool    `json:"is_active"`
}

// WorkerUpdateRequest 更新员工账号。Password 留空时保持原密码
type WorkerUpdateRequest struct {
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	PageAccess []string `json:"page_access"`
	IsActive   *bool    `json:"is_active"`
}
