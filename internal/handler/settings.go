package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"AreejShop/internal/model"
	"AreejShop/internal/service"
	"AreejShop/pkg/response"
)

// GetSettings 店铺设置（店面公开接口）
// GET /api/settings
func GetSettings(ctx context.Context, c *app.RequestContext) {
	settings, err := service.Settings().GetSettings(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, settings)
}

// UpdateSettings 更新店铺设置
// PUT /api/settings
func UpdateSettings(ctx context.Context, c *app.RequestContext) {
	var req model.Settings
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	settings, err := service.Settings().UpdateSettings(ctx, &req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, settings)
}
