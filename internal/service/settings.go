package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"AreejShop/internal/cache"
	"AreejShop/internal/model"
	"AreejShop/pkg/logger"
	"AreejShop/storage/database"
)

type SettingsService struct{}

var (
	settingsService *SettingsService
	settingsOnce    sync.Once
)

func Settings() *SettingsService {
	settingsOnce.Do(func() {
		settingsService = &SettingsService{}
	})
	return settingsService
}

// GetSettings 读取店铺设置。单行表，不存在时创建默认行。
// 读路径带 Redis 缓存，店面每个页面都要展示店铺信息
func (s *SettingsService) GetSettings(ctx context.Context) (*model.Settings, error) {
	if cached, err := cache.GetSettings(ctx); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		logger.Logger.Warn("Settings cache unavailable", zap.Error(err))
	}

	var settings model.Settings
	err := database.DB().WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := database.DB().WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	if err := cache.SetSettings(ctx, &settings); err != nil {
		logger.Logger.Warn("Failed to cache settings", zap.Error(err))
	}

	return &settings, nil
}

// UpdateSettings 整体覆盖店铺设置并作废缓存
func (s *SettingsService) UpdateSettings(ctx context.Context, updated *model.Settings) (*model.Settings, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	updated.ID = current.ID
	updated.CreatedAt = current.CreatedAt

	if err := database.DB().WithContext(ctx).Save(updated).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	if err := cache.InvalidateSettings(ctx); err != nil {
		logger.Logger.Warn("Failed to invalidate settings cache", zap.Error(err))
	}

	logger.Logger.Info("Settings updated")
	return updated, nil
}
