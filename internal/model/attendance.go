package model

// AttendanceMethod 签到方式枚举
type AttendanceMethod string

const (
	AttendanceMethodQR     AttendanceMethod = "qr"     // 扫描每日二维码
	AttendanceMethodManual AttendanceMethod = "manual" // 管理员手工补签
)

// Attendance 员工考勤记录。
// (worker_id, date) 的复合唯一索引是"每人每天最多一条"的正确性边界，
// 应用层的预检查只是为了更友好的报错，不承担并发正确性
type Attendance struct {
	BaseModel
	WorkerID int64 `gorm:"not null;uniqueIndex:idx_attendance_worker_date" json:"worker_id"`
	// WorkerName 是签到时刻的姓名快照，员工改名后不回填
	WorkerName string `gorm:"type:varchar(64);not null" json:"worker_name"`
	// Date 是本地时区的日历日（YYYY-MM-DD），不是时间戳，是唯一性的单位
	Date string `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_worker_date" json:"date"`
	// CheckInTime 挂钟时间（HH:MM:SS），仅用于展示
	CheckInTime string           `gorm:"type:varchar(8);not null" json:"check_in_time"`
	Method      AttendanceMethod `gorm:"type:varchar(8);not null;default:'qr'" json:"method"`
}

func (Attendance) TableName() string {
	return "attendances"
}
