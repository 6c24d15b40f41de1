package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"AreejShop/internal/model/dto"
	"AreejShop/internal/service"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/response"
)

// ListInvoices 发票列表
// GET /api/invoices
func ListInvoices(ctx context.Context, c *app.RequestContext) {
	invoices, err := service.Invoice().ListInvoices(ctx)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, invoices)
}

// GetInvoice 单张发票
// GET /api/invoices/:id
func GetInvoice(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.InvoiceNotFound)
		return
	}

	invoice, err := service.Invoice().GetInvoice(ctx, id)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Success(ctx, c, invoice)
}

// CreateInvoice 开具发票
// POST /api/invoices
func CreateInvoice(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateInvoiceRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	invoice, err := service.Invoice().CreateInvoice(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.Created(ctx, c, invoice)
}

// DeleteInvoice 删除发票
// DELETE /api/invoices/:id
func DeleteInvoice(ctx context.Context, c *app.RequestContext) {
	id, ok := parseIDParam(c)
	if !ok {
		response.Error(ctx, c, pkgerrors.InvoiceNotFound)
		return
	}

	if err := service.Invoice().DeleteInvoice(ctx, id); err != nil {
		response.Error(ctx, c, err)
		return
	}
	response.NoContent(ctx, c)
}
