package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"AreejShop/internal/model/dto"
	"AreejShop/internal/service"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/response"
)

// ListProducts 商品列表（店面公开接口）
// GET /api/products
func ListProducts(ctx context.Context, c *app.RequestContext) {
	var query dto.ProductListQuery
	if err := c.BindQuery(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	products, err := service.Product().ListProducts(ctx, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, products)
}

// GetProduct 单个商品（店面公开接口）
// GET /api/products/:id
func GetProduct(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.ProductNotFound)
		return
	}

	product, err := service.Product().GetProduct(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, product)
}

// CreateProduct 新建商品
// POST /api/products
func CreateProduct(ctx context.Context, c *app.RequestContext) {
	var req dto.ProductUpsertRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	product, err := service.Product().CreateProduct(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, product)
}

// UpdateProduct 更新商品
// PUT /api/products/:id
func UpdateProduct(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.ProductNotFound)
		return
	}

	var req dto.ProductUpsertRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	product, err := service.Product().UpdateProduct(ctx, id, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, product)
}

// DeleteProduct 删除商品
// DELETE /api/products/:id
func DeleteProduct(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.ProductNotFound)
		return
	}

	if err := service.Product().DeleteProduct(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}
