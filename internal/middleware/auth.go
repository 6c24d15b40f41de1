package middleware

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"AreejShop/pkg/errors"
	"AreejShop/pkg/response"
	"AreejShop/pkg/token"
)

const (
	identityContextKey = "identity"

	AdminCookieName  = "admin_token"
	WorkerCookieName = "worker_token"
)

// extractToken 依次尝试 Authorization 头、管理员 cookie、员工 cookie
func extractToken(c *app.RequestContext) string {
	auth := string(c.GetHeader("Authorization"))
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie := string(c.Cookie(AdminCookieName)); cookie != "" {
		return cookie
	}
	if cookie := string(c.Cookie(WorkerCookieName)); cookie != "" {
		return cookie
	}
	return ""
}

// AuthMiddleware 解析并校验 token，把登录主体放进请求上下文。
// 管理员与员工共用一条认证链，角色区分交给 RequireRole / RequirePage
func AuthMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		raw := extractToken(c)
		if raw == "" {
			response.Error(ctx, c, errors.Unauthorized)
			c.Abort()
			return
		}

		identity, err := token.ParseToken(raw)
		if err != nil {
			response.Error(ctx, c, errors.Unauthorized)
			c.Abort()
			return
		}

		c.Set(identityContextKey, identity)
		c.Next(ctx)
	}
}

// GetIdentity 从请求上下文中取出登录主体
func GetIdentity(c *app.RequestContext) (*token.Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*token.Identity)
	return identity, ok
}

// RequireRole 只放行指定角色
func RequireRole(role string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		identity, ok := GetIdentity(c)
		if !ok {
			response.Error(ctx, c, errors.Unauthorized)
			c.Abort()
			return
		}
		if identity.Role != role {
			response.Error(ctx, c, errors.PageForbidden)
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}

// RequirePage 页面级权限：管理员全通，员工按 page_access 白名单
func RequirePage(page string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		identity, ok := GetIdentity(c)
		if !ok {
			response.Error(ctx, c, errors.Unauthorized)
			c.Abort()
			return
		}

		if identity.Role == token.RoleAdmin {
			c.Next(ctx)
			return
		}

		for _, allowed := range identity.PageAccess {
			if allowed == page {
				c.Next(ctx)
				return
			}
		}

		response.Error(ctx, c, errors.PageForbidden)
		c.Abort()
	}
}
