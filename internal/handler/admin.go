package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"AreejShop/internal/model/dto"
	"AreejShop/internal/service"
	"AreejShop/pkg/response"
)

// ClearCollection 批量清空集合，仅限 invoices/orders/customers
// POST /api/admin/clear
func ClearCollection(ctx context.Context, c *app.RequestContext) {
	var req dto.ClearCollectionRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	if err := service.Admin().ClearCollection(ctx, req.Collection); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, map[string]string{"cleared": req.Collection})
}
