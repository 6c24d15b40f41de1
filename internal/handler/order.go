package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"AreejShop/internal/model/dto"
	"AreejShop/internal/service"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/response"
)

// CreateOrder 店面下单（公开接口，货到付款）
// POST /api/orders
func CreateOrder(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateOrderRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	order, err := service.Order().CreateOrder(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, order)
}

// TrackOrder 按订单号查询（店面公开接口）
// GET /api/orders/track/:number
func TrackOrder(ctx context.Context, c *app.RequestContext) {
	number := c.Param("number")
	if number == "" {
		response.Error(ctx, c, pkgerrors.OrderNotFound)
		return
	}

	order, err := service.Order().GetOrderByNumber(ctx, number)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, order)
}

// ListOrders 订单列表
// GET /api/orders
func ListOrders(ctx context.Context, c *app.RequestContext) {
	var query dto.OrderListQuery
	if err := c.BindQuery(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	orders, err := service.Order().ListOrders(ctx, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, orders)
}

// GetOrder 单个订单
// GET /api/orders/:id
func GetOrder(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.OrderNotFound)
		return
	}

	order, err := service.Order().GetOrder(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, order)
}

// UpdateOrderStatus 更新订单状态
// PATCH /api/orders/:id/status
func UpdateOrderStatus(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.OrderNotFound)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	order, err := service.Order().UpdateOrderStatus(ctx, id, req.Status)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, order)
}

// DeleteOrder 删除订单
// DELETE /api/orders/:id
func DeleteOrder(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.OrderNotFound)
		return
	}

	if err := service.Order().DeleteOrder(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}
