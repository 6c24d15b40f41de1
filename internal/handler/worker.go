package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"AreejShop/internal/model/dto"
	"AreejShop/internal/service"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/response"
)

// ListWorkers 员工列表
// GET /api/workers
func ListWorkers(ctx context.Context, c *app.RequestContext) {
	workers, err := service.Worker().ListWorkers(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, workers)
}

// GetWorker 单个员工
// GET /api/workers/:id
func GetWorker(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.WorkerNotFound)
		return
	}

	worker, err := service.Worker().GetWorker(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, worker)
}

// CreateWorker 创建员工账号
// POST /api/workers
func CreateWorker(ctx context.Context, c *app.RequestContext) {
	var req dto.WorkerCreateRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	worker, err := service.Worker().CreateWorker(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, worker)
}

// UpdateWorker 更新员工账号
// PUT /api/workers/:id
func UpdateWorker(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.WorkerNotFound)
		return
	}

	var req dto.WorkerUpdateRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	worker, err := service.Worker().UpdateWorker(ctx, id, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, worker)
}

// DeleteWorker 删除员工账号
// DELETE /api/workers/:id
func DeleteWorker(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.WorkerNotFound)
		return
	}

	if err := service.Worker().DeleteWorker(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}
