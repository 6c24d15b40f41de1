package dto

// LoginRequest 登录请求，管理员与员工共用
type LoginRequest struct {
	Email    string `json:"email" vd:"len($)>0"`
	Password string `json:"password" vd:"len($)>0"`
}

// LoginData 登录结果
type LoginData struct {
	Token      string   `json:"token"`
	ExpiresIn  int      `json:"expires_in"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	PageAccess []string `json:"page_access,omitempty"`
}

// ChangePasswordRequest 修改密码
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" vd:"len($)>0"`
	NewPassword     string `json:"new_password" vd:"len($)>0"`
}

// SessionData 会话检查结果
type SessionData struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	PageAccess []string `json:"page_access,omitempty"`
}
