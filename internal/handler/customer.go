package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"AreejShop/internal/model/dto"
	"AreejShop/internal/service"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/response"
)

// ListCustomers 客户列表
// GET /api/customers
func ListCustomers(ctx context.Context, c *app.RequestContext) {
	customers, err := service.Customer().ListCustomers(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, customers)
}

// GetCustomer 单个客户
// GET /api/customers/:id
func GetCustomer(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.CustomerNotFound)
		return
	}

	customer, err := service.Customer().GetCustomer(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, customer)
}

// CreateCustomer 手工创建客户档案
// POST /api/customers
func CreateCustomer(ctx context.Context, c *app.RequestContext) {
	var req dto.CustomerUpsertRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	customer, err := service.Customer().CreateCustomer(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, customer)
}

// UpdateCustomer 更新客户档案
// PUT /api/customers/:id
func UpdateCustomer(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.CustomerNotFound)
		return
	}

	var req dto.CustomerUpsertRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	customer, err := service.Customer().UpdateCustomer(ctx, id, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, customer)
}

// DeleteCustomer 删除客户档案
// DELETE /api/customers/:id
func DeleteCustomer(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.CustomerNotFound)
		return
	}

	if err := service.Customer().DeleteCustomer(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}
