package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol"

	"AreejShop/internal/middleware"
	"AreejShop/internal/model/dto"
	"AreejShop/internal/service"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/response"
	"AreejShop/pkg/token"
)

// Login 管理员/员工登录
// POST /api/auth/login
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	data, err := service.Auth().Login(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	// 按角色下发不同的 cookie，前端后台和员工端互不串号
	cookieName := middleware.AdminCookieName
	if data.Role == token.RoleWorker {
		cookieName = middleware.WorkerCookieName
	}
	c.SetCookie(cookieName, data.Token, data.ExpiresIn, "/", "",
		protocol.CookieSameSiteLaxMode, false, true)

	response.Success(ctx, c, data)
}

// Logout 退出登录，清掉两种 cookie
// POST /api/auth/logout
func Logout(ctx context.Context, c *app.RequestContext) {
	c.SetCookie(middleware.AdminCookieName, "", -1, "/", "",
		protocol.CookieSameSiteLaxMode, false, true)
	c.SetCookie(middleware.WorkerCookieName, "", -1, "/", "",
		protocol.CookieSameSiteLaxMode, false, true)
	response.Success(ctx, c, map[string]bool{"logged_out": true})
}

// GetSession 当前登录主体
// GET /api/auth/session
func GetSession(ctx context.Context, c *app.RequestContext) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}
	response.Success(ctx, c, service.Auth().Session(identity))
}

// ChangePassword 修改当前账号密码
// POST /api/auth/change-password
func ChangePassword(ctx context.Context, c *app.RequestContext) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.Unauthorized)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Auth().ChangePassword(ctx, identity, req); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, map[string]bool{"changed": true})
}

// parseIDParam 解析路径中的数字 ID
func parseIDParam(c *app.RequestContext) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
