package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"AreejShop/config"
	"AreejShop/internal/model"
	"AreejShop/internal/model/dto"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/token"
	"AreejShop/utils"
)

func init() {
	config.Cfg.JWTSecret = "test-jwt-secret"
	config.Cfg.JWTExpireMinutes = 60
	if err := token.Init(); err != nil {
		panic(err)
	}
}

type fakeAccounts struct {
	admins  map[string]*model.Admin
	workers map[string]*model.Worker

	adminPasswords  map[int64]string
	workerPasswords map[int64]string
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{
		admins:          make(map[string]*model.Admin),
		workers:         make(map[string]*model.Worker),
		adminPasswords:  make(map[int64]string),
		workerPasswords: make(map[int64]string),
	}
}

func (f *fakeAccounts) FindAdminByEmail(_ context.Context, email string) (*model.Admin, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return admin, nil
}

func (f *fakeAccounts) FindWorkerByEmail(_ context.Context, email string) (*model.Worker, error) {
	worker, ok := f.workers[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return worker, nil
}

func (f *fakeAccounts) FindAdmin(_ context.Context, id int64) (*model.Admin, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccounts) FindWorkerByID(_ context.Context, id int64) (*model.Worker, error) {
	for _, worker := range f.workers {
		if worker.ID == id {
			return worker, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAccounts) UpdateAdminPassword(_ context.Context, id int64, hash string) error {
	f.adminPasswords[id] = hash
	return nil
}

func (f *fakeAccounts) UpdateWorkerPassword(_ context.Context, id int64, hash string) error {
	f.workerPasswords[id] = hash
	return nil
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestLoginAsAdmin(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.admins["admin@areej.com"] = &model.Admin{
		BaseModel:    model.BaseModel{ID: 1},
		Name:         "Manager",
		Email:        "admin@areej.com",
		PasswordHash: mustHash(t, "admin123"),
	}
	svc := &AuthService{accounts: accounts}

	data, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "Admin@Areej.com",
		Password: "admin123",
	})

	require.NoError(t, err)
	assert.Equal(t, token.RoleAdmin, data.Role)
	assert.NotEmpty(t, data.Token)
	assert.Empty(t, data.PageAccess)

	identity, err := token.ParseToken(data.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.ID)
	assert.Equal(t, token.RoleAdmin, identity.Role)
}

func TestLoginAsWorker(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.workers["sara@areej.com"] = &model.Worker{
		BaseModel:    model.BaseModel{ID: 7},
		Name:         "Sara",
		Email:        "sara@areej.com",
		PasswordHash: mustHash(t, "worker-pass"),
		PageAccess:   model.StringList{"orders", "attendance"},
		IsActive:     true,
	}
	svc := &AuthService{accounts: accounts}

	data, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "sara@areej.com",
		Password: "worker-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, token.RoleWorker, data.Role)
	assert.ElementsMatch(t, []string{"orders", "attendance"}, data.PageAccess)

	identity, err := token.ParseToken(data.Token)
	require.NoError(t, err)
	assert.Equal(t, token.RoleWorker, identity.Role)
	assert.ElementsMatch(t, []string{"orders", "attendance"}, identity.PageAccess)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.workers["sara@areej.com"] = &model.Worker{
		BaseModel:    model.BaseModel{ID: 7},
		Email:        "sara@areej.com",
		PasswordHash: mustHash(t, "correct"),
		IsActive:     true,
	}
	svc := &AuthService{accounts: accounts}

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "sara@areej.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, pkgerrors.InvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := &AuthService{accounts: newFakeAccounts()}

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@areej.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, pkgerrors.InvalidCredentials)
}

func TestLoginRejectsInactiveWorker(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.workers["omar@areej.com"] = &model.Worker{
		BaseModel:    model.BaseModel{ID: 5},
		Email:        "omar@areej.com",
		PasswordHash: mustHash(t, "secret-pass"),
		IsActive:     false,
	}
	svc := &AuthService{accounts: accounts}

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "omar@areej.com",
		Password: "secret-pass",
	})
	assert.ErrorIs(t, err, pkgerrors.AccountInactive)
}

func TestChangePassword(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.workers["sara@areej.com"] = &model.Worker{
		BaseModel:    model.BaseModel{ID: 7},
		Email:        "sara@areej.com",
		PasswordHash: mustHash(t, "old-pass"),
		IsActive:     true,
	}
	svc := &AuthService{accounts: accounts}
	identity := &token.Identity{ID: 7, Role: token.RoleWorker}

	err := svc.ChangePassword(context.Background(), identity, dto.ChangePasswordRequest{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass-123",
	})
	require.NoError(t, err)

	newHash, ok := accounts.workerPasswords[7]
	require.True(t, ok)
	assert.True(t, utils.CheckPassword(newHash, "new-pass-123"))
}

func TestChangePasswordRejectsWrongCurrent(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.workers["sara@areej.com"] = &model.Worker{
		BaseModel:    model.BaseModel{ID: 7},
		Email:        "sara@areej.com",
		PasswordHash: mustHash(t, "old-pass"),
		IsActive:     true,
	}
	svc := &AuthService{accounts: accounts}

	err := svc.ChangePassword(context.Background(), &token.Identity{ID: 7, Role: token.RoleWorker}, dto.ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "new-pass-123",
	})
	assert.ErrorIs(t, err, pkgerrors.InvalidCredentials)
}

func TestChangePasswordRejectsShortPassword(t *testing.T) {
	svc := &AuthService{accounts: newFakeAccounts()}

	err := svc.ChangePassword(context.Background(), &token.Identity{ID: 1, Role: token.RoleAdmin}, dto.ChangePasswordRequest{
		CurrentPassword: "old",
		NewPassword:     "short",
	})
	assert.ErrorIs(t, err, pkgerrors.PasswordTooShort)
}
