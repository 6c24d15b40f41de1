package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"AreejShop/config"
	"AreejShop/internal/cache"
	"AreejShop/internal/model"
	"AreejShop/internal/model/dto"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/logger"
	"AreejShop/pkg/metrics"
	"AreejShop/pkg/qrtoken"
	"AreejShop/storage/database"
	"AreejShop/utils"
)

// workerFinder / attendanceStore / dayMarker 把存储依赖收窄成小接口，
// 测试时用内存假实现替换
type workerFinder interface {
	FindWorker(ctx context.Context, id int64) (*model.Worker, error)
}

type attendanceStore interface {
	Create(ctx context.Context, record *model.Attendance) error
	List(ctx context.Context, date string, workerID int64) ([]model.Attendance, error)
	CountForDate(ctx context.Context, date string) (int64, error)
}

type dayMarker interface {
	TryMark(ctx context.Context, date string, workerID int64) (bool, error)
	Unmark(ctx context.Context, date string, workerID int64) error
}

type AttendanceService struct {
	workers workerFinder
	store   attendanceStore
	marks   dayMarker
}

var (
	attendanceService *AttendanceService
	attendanceOnce    sync.Once
)

func Attendance() *AttendanceService {
	attendanceOnce.Do(func() {
		attendanceService = &AttendanceService{
			workers: gormWorkerFinder{},
			store:   gormAttendanceStore{},
			marks:   redisDayMarker{},
		}
	})
	return attendanceService
}

// RecordCheckIn 记录一次签到。
// qr 方式要求码值通过校验且日期为今天；manual 方式由管理员补签。
// 幂等链路：Redis 标记做快速拒绝，数据库唯一索引做最终裁决
func (s *AttendanceService) RecordCheckIn(ctx context.Context, req dto.CheckInRequest) (*model.Attendance, error) {
	method := model.AttendanceMethod(req.Method)
	if method == "" {
		method = model.AttendanceMethodQR
	}
	if method != model.AttendanceMethodQR && method != model.AttendanceMethodManual {
		return nil, pkgerrors.AttendanceMethodInvalid
	}

	date := utils.Today()
	if method == model.AttendanceMethodQR {
		result := qrtoken.Validate(config.Cfg.QRSecret, req.QRValue)
		if !result.Valid {
			s.recordRejected(ctx, result.Message)
			switch result.Message {
			case qrtoken.ReasonMalformed:
				return nil, pkgerrors.QRFormatInvalid
			case qrtoken.ReasonExpired:
				return nil, pkgerrors.QRCodeExpired
			default:
				return nil, pkgerrors.QRCodeInvalid
			}
		}
		date = result.Date
	}

	worker, err := s.workers.FindWorker(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.WorkerNotFound
		}
		return nil, fmt.Errorf("failed to query worker: %w", err)
	}
	if !worker.IsActive {
		return nil, pkgerrors.AccountInactive
	}

	marked, err := s.marks.TryMark(ctx, date, worker.ID)
	if err != nil {
		// Redis 故障降级：直接走数据库，唯一索引仍然兜底
		logger.Logger.Warn("Attendance day-mark unavailable, falling back to database",
			zap.Error(err),
			zap.Int64("worker_id", worker.ID),
		)
	} else if !marked {
		s.recordRejected(ctx, "duplicate")
		return nil, pkgerrors.AttendanceAlreadyRecorded
	}

	record := &model.Attendance{
		WorkerID:    worker.ID,
		WorkerName:  worker.Name,
		Date:        date,
		CheckInTime: utils.ClockTime(),
		Method:      method,
	}

	if err := s.store.Create(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.recordRejected(ctx, "duplicate")
			return nil, pkgerrors.AttendanceAlreadyRecorded
		}
		// 写库失败要撤掉 Redis 标记，否则员工当天再也签不上
		if unmarkErr := s.marks.Unmark(ctx, date, worker.ID); unmarkErr != nil {
			logger.Logger.Error("Failed to roll back attendance day-mark",
				zap.Error(unmarkErr),
				zap.Int64("worker_id", worker.ID),
				zap.String("date", date),
			)
		}
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	if m := metrics.GetMetrics(); m != nil {
		m.RecordCheckIn(ctx, string(method))
	}

	logger.Logger.Info("Attendance recorded",
		zap.Int64("worker_id", worker.ID),
		zap.String("date", date),
		zap.String("method", string(method)),
	)

	return record, nil
}

// ListAttendance 按日期和/或员工筛选考勤记录
func (s *AttendanceService) ListAttendance(ctx context.Context, query dto.AttendanceListQuery) ([]model.Attendance, error) {
	records, err := s.store.List(ctx, query.Date, query.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// DailyQR 返回当天的考勤码值，优先读缓存
func (s *AttendanceService) DailyQR(ctx context.Context) (*dto.DailyQRData, error) {
	date := qrtoken.Today()

	value, err := cache.GetDailyQR(ctx, date)
	if err != nil {
		logger.Logger.Warn("Failed to read cached daily QR", zap.Error(err))
	}
	if value == "" {
		value = qrtoken.Generate(config.Cfg.QRSecret, date)
		if err := cache.SetDailyQR(ctx, date, value); err != nil {
			logger.Logger.Warn("Failed to cache daily QR", zap.Error(err))
		}
	}

	return &dto.DailyQRData{QRValue: value, Date: date}, nil
}

// DailyQRImage 将当天考勤码渲染为 PNG
func (s *AttendanceService) DailyQRImage(ctx context.Context, size int) ([]byte, error) {
	return qrtoken.Image(config.Cfg.QRSecret, qrtoken.Today(), size)
}

// CountForDate 统计某天的签到数，日报汇总用
func (s *AttendanceService) CountForDate(ctx context.Context, date string) (int64, error) {
	return s.store.CountForDate(ctx, date)
}

// Summarize 汇总某天的考勤情况。TotalWorkers 由调用方补齐
func (s *AttendanceService) Summarize(ctx context.Context, date string) (model.AttendanceSummaryMessage, error) {
	records, err := s.store.List(ctx, date, 0)
	if err != nil {
		return model.AttendanceSummaryMessage{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	summary := model.AttendanceSummaryMessage{
		Date:      date,
		CheckedIn: int64(len(records)),
	}
	for _, record := range records {
		switch record.Method {
		case model.AttendanceMethodManual:
			summary.ViaManual++
		default:
			summary.ViaQR++
		}
	}
	return summary, nil
}

func (s *AttendanceService) recordRejected(ctx context.Context, reason string) {
	if m := metrics.GetMetrics(); m != nil {
		m.RecordCheckInRejected(ctx, reason)
	}
}

// --- 默认存储实现 ---

type gormWorkerFinder struct{}

func (gormWorkerFinder) FindWorker(ctx context.Context, id int64) (*model.Worker, error) {
	var worker model.Worker
	if err := database.DB().WithContext(ctx).First(&worker, id).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

type gormAttendanceStore struct{}

func (gormAttendanceStore) Create(ctx context.Context, record *model.Attendance) error {
	return database.DB().WithContext(ctx).Create(record).Error
}

func (gormAttendanceStore) List(ctx context.Context, date string, workerID int64) ([]model.Attendance, error) {
	tx := database.DB().WithContext(ctx).Model(&model.Attendance{})
	if date != "" {
		tx = tx.Where("date = ?", date)
	}
	if workerID > 0 {
		tx = tx.Where("worker_id = ?", workerID)
	}

	var records []model.Attendance
	if err := tx.Order("date DESC, check_in_time DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (gormAttendanceStore) CountForDate(ctx context.Context, date string) (int64, error) {
	var count int64
	err := database.DB().WithContext(ctx).
		Model(&model.Attendance{}).
		Where("date = ?", date).
		Count(&count).Error
	return count, err
}

type redisDayMarker struct{}

func (redisDayMarker) TryMark(ctx context.Context, date string, workerID int64) (bool, error) {
	return cache.TryMarkCheckedIn(ctx, date, workerID)
}

func (redisDayMarker) Unmark(ctx context.Context, date string, workerID int64) error {
	return cache.UnmarkCheckedIn(ctx, date, workerID)
}
