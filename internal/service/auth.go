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
	"AreejShop/pkg/token"
	"AreejShop/storage/database"
	"AreejShop/utils"
)

const minPasswordLength = 6

// accountStore 认证要用到的账号查询和密码更新
type accountStore interface {
	FindAdminByEmail(ctx context.Context, email string) (*model.Admin, error)
	FindWorkerByEmail(ctx context.Context, email string) (*model.Worker, error)
	FindAdmin(ctx context.Context, id int64) (*model.Admin, error)
	FindWorkerByID(ctx context.Context, id int64) (*model.Worker, error)
	UpdateAdminPassword(ctx context.Context, id int64, hash string) error
	UpdateWorkerPassword(ctx context.Context, id int64, hash string) error
}

type AuthService struct {
	accounts accountStore
}

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = &AuthService{accounts: gormAccountStore{}}
	})
	return authService
}

// Login 先查管理员表，再查员工表。停用的员工账号禁止登录
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginData, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := s.accounts.FindAdminByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	if admin != nil {
		if !utils.CheckPassword(admin.PasswordHash, req.Password) {
			return nil, pkgerrors.InvalidCredentials
		}
		return s.issueToken(token.Identity{
			ID:    admin.ID,
			Email: admin.Email,
			Name:  admin.Name,
			Role:  token.RoleAdmin,
		})
	}

	worker, err := s.accounts.FindWorkerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.InvalidCredentials
		}
		return nil, fmt.Errorf("failed to query worker: %w", err)
	}

	if !utils.CheckPassword(worker.PasswordHash, req.Password) {
		return nil, pkgerrors.InvalidCredentials
	}
	if !worker.IsActive {
		return nil, pkgerrors.AccountInactive
	}

	return s.issueToken(token.Identity{
		ID:         worker.ID,
		Email:      worker.Email,
		Name:       worker.Name,
		Role:       token.RoleWorker,
		PageAccess: worker.PageAccess,
	})
}

func (s *AuthService) issueToken(identity token.Identity) (*dto.LoginData, error) {
	tokenString, expiresIn, err := token.GenerateToken(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Logger.Info("Login succeeded",
		zap.Int64("identity_id", identity.ID),
		zap.String("role", identity.Role),
	)

	return &dto.LoginData{
		Token:      tokenString,
		ExpiresIn:  expiresIn,
		Name:       identity.Name,
		Email:      identity.Email,
		Role:       identity.Role,
		PageAccess: identity.PageAccess,
	}, nil
}

// ChangePassword 校验旧密码后更新为新密码
func (s *AuthService) ChangePassword(ctx context.Context, identity *token.Identity, req dto.ChangePasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return pkgerrors.PasswordTooShort
	}

	var currentHash string
	switch identity.Role {
	case token.RoleAdmin:
		admin, err := s.accounts.FindAdmin(ctx, identity.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Unauthorized
			}
			return fmt.Errorf("failed to query admin: %w", err)
		}
		currentHash = admin.PasswordHash
	case token.RoleWorker:
		worker, err := s.accounts.FindWorkerByID(ctx, identity.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.Unauthorized
			}
			return fmt.Errorf("failed to query worker: %w", err)
		}
		currentHash = worker.PasswordHash
	default:
		return pkgerrors.Unauthorized
	}

	if !utils.CheckPassword(currentHash, req.CurrentPassword) {
		return pkgerrors.InvalidCredentials
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if identity.Role == token.RoleAdmin {
		err = s.accounts.UpdateAdminPassword(ctx, identity.ID, hash)
	} else {
		err = s.accounts.UpdateWorkerPassword(ctx, identity.ID, hash)
	}
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	logger.Logger.Info("Password changed",
		zap.Int64("identity_id", identity.ID),
		zap.String("role", identity.Role),
	)
	return nil
}

// Session 返回当前登录主体的展示信息
func (s *AuthService) Session(identity *token.Identity) *dto.SessionData {
	return &dto.SessionData{
		Name:       identity.Name,
		Email:      identity.Email,
		Role:       identity.Role,
		PageAccess: identity.PageAccess,
	}
}

// --- 默认存储实现 ---

type gormAccountStore struct{}

func (gormAccountStore) FindAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	if err := database.DB().WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (gormAccountStore) FindWorkerByEmail(ctx context.Context, email string) (*model.Worker, error) {
	var worker model.Worker
	if err := database.DB().WithContext(ctx).Where("email = ?", email).First(&worker).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (gormAccountStore) FindAdmin(ctx context.Context, id int64) (*model.Admin, error) {
	var admin model.Admin
	if err := database.DB().WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (gormAccountStore) FindWorkerByID(ctx context.Context, id int64) (*model.Worker, error) {
	var worker model.Worker
	if err := database.DB().WithContext(ctx).First(&worker, id).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (gormAccountStore) UpdateAdminPassword(ctx context.Context, id int64, hash string) error {
	return database.DB().WithContext(ctx).
		Model(&model.Admin{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (gormAccountStore) UpdateWorkerPassword(ctx context.Context, id int64, hash string) error {
	return database.DB().WithContext(ctx).
		Model(&model.Worker{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}
