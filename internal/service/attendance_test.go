package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"AreejShop/config"
	"AreejShop/internal/model"
	"AreejShop/internal/model/dto"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/logger"
	"AreejShop/pkg/qrtoken"
	"AreejShop/utils"
)

const testQRSecret = "test-secret"

func init() {
	logger.Logger = zap.NewNop()
	config.Cfg.QRSecret = testQRSecret
}

type fakeWorkers struct {
	workers map[int64]*model.Worker
}

func (f *fakeWorkers) FindWorker(_ context.Context, id int64) (*model.Worker, error) {
	worker, ok := f.workers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return worker, nil
}

type fakeAttendanceStore struct {
	records   []model.Attendance
	createErr error
}

func (f *fakeAttendanceStore) Create(_ context.Context, record *model.Attendance) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.records {
		if existing.WorkerID == record.WorkerID && existing.Date == record.Date {
			return gorm.ErrDuplicatedKey
		}
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeAttendanceStore) List(_ context.Context, date string, workerID int64) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, record := range f.records {
		if date != "" && record.Date != date {
			continue
		}
		if workerID > 0 && record.WorkerID != workerID {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (f *fakeAttendanceStore) CountForDate(_ context.Context, date string) (int64, error) {
	var count int64
	for _, record := range f.records {
		if record.Date == date {
			count++
		}
	}
	return count, nil
}

type fakeDayMarker struct {
	marks    map[string]bool
	unmarked []string
}

func markKey(date string, workerID int64) string {
	return fmt.Sprintf("%s/%d", date, workerID)
}

func (f *fakeDayMarker) TryMark(_ context.Context, date string, workerID int64) (bool, error) {
	key := markKey(date, workerID)
	if f.marks[key] {
		return false, nil
	}
	if f.marks == nil {
		f.marks = make(map[string]bool)
	}
	f.marks[key] = true
	return true, nil
}

func (f *fakeDayMarker) Unmark(_ context.Context, date string, workerID int64) error {
	delete(f.marks, markKey(date, workerID))
	f.unmarked = append(f.unmarked, markKey(date, workerID))
	return nil
}

func newTestService(workers map[int64]*model.Worker) (*AttendanceService, *fakeAttendanceStore, *fakeDayMarker) {
	store := &fakeAttendanceStore{}
	marks := &fakeDayMarker{marks: make(map[string]bool)}
	svc := &AttendanceService{
		workers: &fakeWorkers{workers: workers},
		store:   store,
		marks:   marks,
	}
	return svc, store, marks
}

func activeWorker(id int64, name string) *model.Worker {
	return &model.Worker{
		BaseModel: model.BaseModel{ID: id},
		Name:      name,
		IsActive:  true,
	}
}

func TestRecordCheckInWithValidQR(t *testing.T) {
	svc, store, _ := newTestService(map[int64]*model.Worker{
		7: activeWorker(7, "Sara"),
	})

	today := utils.Today()
	record, err := svc.RecordCheckIn(context.Background(), dto.CheckInRequest{
		WorkerID: 7,
		Method:   "qr",
		QRValue:  qrtoken.Generate(testQRSecret, today),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), record.WorkerID)
	assert.Equal(t, "Sara", record.WorkerName)
	assert.Equal(t, today, record.Date)
	assert.Equal(t, model.AttendanceMethodQR, record.Method)
	assert.Len(t, store.records, 1)
}

func TestRecordCheckInRejectsMalformedQR(t *testing.T) {
	svc, store, _ := newTestService(map[int64]*model.Worker{
		7: activeWorker(7, "Sara"),
	})

	for _, value := range []string{"", "not-a-code", "AREEJ-ATT-2024-01-01-XYZ"} {
		_, err := svc.RecordCheckIn(context.Background(), dto.CheckInRequest{
			WorkerID: 7,
			Method:   "qr",
			QRValue:  value,
		})
		assert.ErrorIs(t, err, pkgerrors.QRFormatInvalid, "value %q", value)
	}
	assert.Empty(t, store.records)
}

func TestRecordCheckInRejectsForgedQR(t *testing.T) {
	svc, _, _ := newTestService(map[int64]*model.Worker{
		7: activeWorker(7, "Sara"),
	})

	forged := qrtoken.Generate("another-secret", utils.Today())
	_, err := svc.RecordCheckIn(context.Background(), dto.CheckInRequest{
		WorkerID: 7,
		Method:   "qr",
		QRValue:  forged,
	})
	assert.ErrorIs(t, err, pkgerrors.QRCodeInvalid)
}

func TestRecordCheckInRejectsExpiredQR(t *testing.T) {
	svc, _, _ := newTestService(map[int64]*model.Worker{
		7: activeWorker(7, "Sara"),
	})

	stale := qrtoken.Generate(testQRSecret, "2020-01-01")
	_, err := svc.RecordCheckIn(context.Background(), dto.CheckInRequest{
		WorkerID: 7,
		Method:   "qr",
		QRValue:  stale,
	})
	assert.ErrorIs(t, err, pkgerrors.QRCodeExpired)
}

func TestRecordCheckInIsIdempotentPerDay(t *testing.T) {
	svc, store, _ := newTestService(map[int64]*model.Worker{
		7: activeWorker(7, "Sara"),
	})

	req := dto.CheckInRequest{
		WorkerID: 7,
		Method:   "qr",
		QRValue:  qrtoken.Generate(testQRSecret, utils.Today()),
	}

	_, err := svc.RecordCheckIn(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.RecordCheckIn(context.Background(), req)
	assert.ErrorIs(t, err, pkgerrors.AttendanceAlreadyRecorded)
	assert.Len(t, store.records, 1)
}

func TestRecordCheckInDuplicateCaughtByStore(t *testing.T) {
	// Redis 标记丢失时，数据库唯一索引仍然要拦住第二次签到
	svc, store, marks := newTestService(map[int64]*model.Worker{
		7: activeWorker(7, "Sara"),
	})

	req := dto.CheckInRequest{
		WorkerID: 7,
		Method:   "qr",
		QRValue:  qrtoken.Generate(testQRSecret, utils.Today()),
	}

	_, err := svc.RecordCheckIn(context.Background(), req)
	require.NoError(t, err)

	// 模拟 Redis 标记被清掉
	marks.marks = make(map[string]bool)

	_, err = svc.RecordCheckIn(context.Background(), req)
	assert.ErrorIs(t, err, pkgerrors.AttendanceAlreadyRecorded)
	assert.Len(t, store.records, 1)
}

func TestRecordCheckInRollsBackMarkOnStoreError(t *testing.T) {
	svc, store, marks := newTestService(map[int64]*model.Worker{
		7: activeWorker(7, "Sara"),
	})
	store.createErr = gorm.ErrInvalidDB

	_, err := svc.RecordCheckIn(context.Background(), dto.CheckInRequest{
		WorkerID: 7,
		Method:   "qr",
		QRValue:  qrtoken.Generate(testQRSecret, utils.Today()),
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, pkgerrors.AttendanceAlreadyRecorded)
	assert.NotEmpty(t, marks.unmarked, "day-mark must be rolled back after a failed insert")
}

func TestRecordCheckInManualMethod(t *testing.T) {
	svc, store, _ := newTestService(map[int64]*model.Worker{
		3: activeWorker(3, "Huda"),
	})

	record, err := svc.RecordCheckIn(context.Background(), dto.CheckInRequest{
		WorkerID: 3,
		Method:   "manual",
	})

	require.NoError(t, err)
	assert.Equal(t, model.AttendanceMethodManual, record.Method)
	assert.Equal(t, utils.Today(), record.Date)
	assert.Len(t, store.records, 1)
}

func TestRecordCheckInRejectsUnknownMethod(t *testing.T) {
	svc, _, _ := newTestService(map[int64]*model.Worker{
		3: activeWorker(3, "Huda"),
	})

	_, err := svc.RecordCheckIn(context.Background(), dto.CheckInRequest{
		WorkerID: 3,
		Method:   "remote",
	})
	assert.ErrorIs(t, err, pkgerrors.AttendanceMethodInvalid)
}

func TestRecordCheckInUnknownWorker(t *testing.T) {
	svc, _, _ := newTestService(map[int64]*model.Worker{})

	_, err := svc.RecordCheckIn(context.Background(), dto.CheckInRequest{
		WorkerID: 99,
		Method:   "manual",
	})
	assert.ErrorIs(t, err, pkgerrors.WorkerNotFound)
}

func TestRecordCheckInInactiveWorker(t *testing.T) {
	worker := activeWorker(5, "Omar")
	worker.IsActive = false
	svc, _, _ := newTestService(map[int64]*model.Worker{5: worker})

	_, err := svc.RecordCheckIn(context.Background(), dto.CheckInRequest{
		WorkerID: 5,
		Method:   "manual",
	})
	assert.ErrorIs(t, err, pkgerrors.AccountInactive)
}

func TestListAttendanceFilters(t *testing.T) {
	svc, store, _ := newTestService(map[int64]*model.Worker{})
	store.records = []model.Attendance{
		{WorkerID: 1, Date: "2024-05-01"},
		{WorkerID: 2, Date: "2024-05-01"},
		{WorkerID: 1, Date: "2024-05-02"},
	}

	byDate, err := svc.ListAttendance(context.Background(), dto.AttendanceListQuery{Date: "2024-05-01"})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	byWorker, err := svc.ListAttendance(context.Background(), dto.AttendanceListQuery{WorkerID: 1})
	require.NoError(t, err)
	assert.Len(t, byWorker, 2)

	both, err := svc.ListAttendance(context.Background(), dto.AttendanceListQuery{Date: "2024-05-02", WorkerID: 1})
	require.NoError(t, err)
	assert.Len(t, both, 1)
}
