package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"AreejShop/config"
	"AreejShop/internal/model"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/logger"
	"AreejShop/storage/database"
	"AreejShop/utils"
)

type AdminService struct{}

var (
	adminService *AdminService
	adminOnce    sync.Once
)

func Admin() *AdminService {
	adminOnce.Do(func() {
		adminService = &AdminService{}
	})
	return adminService
}

// clearableCollections 允许批量清空的集合白名单。
// 考勤记录、员工和管理员账号永远不在范围内
var clearableCollections = map[string]interface{}{
	"invoices":  &model.Invoice{},
	"orders":    &model.Order{},
	"customers": &model.Customer{},
}

// SeedAdmin 确保管理员账号存在，服务启动时调用。
// 邮箱和初始密码来自配置
func (s *AdminService) SeedAdmin(ctx context.Context) error {
	email := config.Cfg.SeedAdminEmail

	var admin model.Admin
	err := database.DB().WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to query admin: %w", err)
	}

	hash, err := utils.HashPassword(config.Cfg.SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin = model.Admin{
		Name:         "Areej Admin",
		Email:        email,
		PasswordHash: hash,
	}
	if err := database.DB().WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	logger.Logger.Info("Admin account seeded", zap.String("email", email))
	return nil
}

// ClearCollection 批量清空指定集合（硬删除），仅限白名单
func (s *AdminService) ClearCollection(ctx context.Context, collection string) error {
	target, ok := clearableCollections[collection]
	if !ok {
		return pkgerrors.CollectionInvalid
	}

	if err := database.DB().WithContext(ctx).
		Unscoped().
		Where("1 = 1").
		Delete(target).Error; err != nil {
		return fmt.Errorf("failed to clear collection %s: %w", collection, err)
	}

	logger.Logger.Warn("Collection cleared", zap.String("collection", collection))
	return nil
}
