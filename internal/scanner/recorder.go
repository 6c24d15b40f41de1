package scanner

import (
	"context"

	"AreejShop/internal/model"
	"AreejShop/internal/model/dto"
	"AreejShop/internal/service"
)

// ServiceRecorder 直连考勤服务的 Recorder 实现，
// 店内一体机部署时扫码器与服务在同一进程
type ServiceRecorder struct{}

func NewServiceRecorder() *ServiceRecorder {
	return &ServiceRecorder{}
}

func (ServiceRecorder) SubmitCheckIn(ctx context.Context, workerID int64, qrValue string) error {
	_, err := service.Attendance().RecordCheckIn(ctx, dto.CheckInRequest{
		WorkerID: workerID,
		Method:   string(model.AttendanceMethodQR),
		QRValue:  qrValue,
	})
	return err
}
