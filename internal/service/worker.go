package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"AreejShop/internal/model"
	"AreejShop/internal/model/dto"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/logger"
	"AreejShop/storage/database"
	"AreejShop/utils"
)

type WorkerService struct{}

var (
	workerService *WorkerService
	workerOnce    sync.Once
)

func Worker() *WorkerService {
	workerOnce.Do(func() {
		workerService = &WorkerService{}
	})
	return workerService
}

// ListWorkers 员工列表
func (s *WorkerService) ListWorkers(ctx context.Context) ([]model.Worker, error) {
	var workers []model.Worker
	if err := database.DB().WithContext(ctx).
		Order("created_at ASC").
		Find(&workers).Error; err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

// GetWorker 查询单个员工
func (s *WorkerService) GetWorker(ctx context.Context, id int64) (*model.Worker, error) {
	var worker model.Worker
	if err := database.DB().WithContext(ctx).First(&worker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.WorkerNotFound
		}
		return nil, fmt.Errorf("failed to query worker: %w", err)
	}
	return &worker, nil
}

// CreateWorker 创建员工账号，邮箱全局唯一
func (s *WorkerService) CreateWorker(ctx context.Context, req dto.WorkerCreateRequest) (*model.Worker, error) {
	if len(req.Password) < minPasswordLength {
		return nil, pkgerrors.PasswordTooShort
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	worker := &model.Worker{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		PageAccess:   req.PageAccess,
		IsActive:     true,
	}
	if req.IsActive != nil {
		worker.IsActive = *req.IsActive
	}

	if err := database.DB().WithContext(ctx).Create(worker).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.WorkerEmailTaken
		}
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	logger.Logger.Info("Worker created",
		zap.Int64("worker_id", worker.ID),
		zap.String("email", worker.Email),
	)
	return worker, nil
}

// UpdateWorker 更新员工账号。密码留空时不变
func (s *WorkerService) UpdateWorker(ctx context.Context, id int64, req dto.WorkerUpdateRequest) (*model.Worker, error) {
	worker, err := s.GetWorker(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		worker.Name = req.Name
	}
	if req.Phone != "" {
		worker.Phone = req.Phone
	}
	if req.Email != "" {
		worker.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Password != "" {
		if len(req.Password) < minPasswordLength {
			return nil, pkgerrors.PasswordTooShort
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		worker.PasswordHash = hash
	}
	if req.PageAccess != nil {
		worker.PageAccess = req.PageAccess
	}
	if req.IsActive != nil {
		worker.IsActive = *req.IsActive
	}

	if err := database.DB().WithContext(ctx).Save(worker).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.WorkerEmailTaken
		}
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}
	return worker, nil
}

// DeleteWorker 删除员工账号（软删除），历史考勤记录保留
func (s *WorkerService) DeleteWorker(ctx context.Context, id int64) error {
	result := database.DB().WithContext(ctx).Delete(&model.Worker{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete worker: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.WorkerNotFound
	}
	return nil
}

// CountActive 统计在职员工数，考勤日报用
func (s *WorkerService) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := database.DB().WithContext(ctx).
		Model(&model.Worker{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}
