package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"AreejShop/internal/service"
	"AreejShop/pkg/response"
)

// GetDashboard 后台首页统计
// GET /api/dashboard
func GetDashboard(ctx context.Context, c *app.RequestContext) {
	data, err := service.Dashboard().GetDashboard(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, data)
}
