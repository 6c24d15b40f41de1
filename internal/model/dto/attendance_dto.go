package dto

// CheckInRequest 签到请求。method=qr 时必须携带扫描到的原始码值
type CheckInRequest struct {
	WorkerID int64  `json:"worker_id" vd:"$>0"`
	Method   string `json:"method"`
	QRValue  string `json:"qr_value"`
}

// DailyQRData 当日考勤码
type DailyQRData struct {
	QRValue string `json:"qr_value"`
	Date    string `json:"date"`
}

// AttendanceListQuery 考勤记录筛选
type AttendanceListQuery struct {
	Date     string `query:"date"`
	WorkerID int64  `query:"worker_id"`
}
