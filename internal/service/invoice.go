package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"AreejShop/internal/model"
	"AreejShop/internal/model/dto"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/snowflake"
	"AreejShop/storage/database"
)

type InvoiceService struct{}

var (
	invoiceService *InvoiceService
	invoiceOnce    sync.Once
)

func Invoice() *InvoiceService {
	invoiceOnce.Do(func() {
		invoiceService = &InvoiceService{}
	})
	return invoiceService
}

// CreateInvoice 开具发票。未指定编号时按店铺设置的前缀自动生成
func (s *InvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*model.Invoice, error) {
	invoiceNumber := req.InvoiceNumber
	if invoiceNumber == "" {
		settings, err := Settings().GetSettings(ctx)
		if err != nil {
			return nil, err
		}
		invoiceNumber, err = snowflake.NextInvoiceNumber(settings.InvoicePrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to generate invoice number: %w", err)
		}
	}

	items := make(model.InvoiceItems, 0, len(req.Items))
	for _, item := range req.Items {
		total := item.Total
		if total == 0 {
			total = float64(item.Quantity) * item.UnitPrice
		}
		items = append(items, model.InvoiceItem{
			Name:      item.Name,
			NameAr:    item.NameAr,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     total,
		})
	}

	discountType := model.DiscountType(req.DiscountType)
	if discountType == "" {
		discountType = model.DiscountFixed
	}

	invoice := &model.Invoice{
		InvoiceNumber: invoiceNumber,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Items:         items,
		Subtotal:      req.Subtotal,
		Discount:      req.Discount,
		DiscountType:  discountType,
		VAT:           req.VAT,
		VATAmount:     req.VATAmount,
		Total:         req.Total,
		Notes:         req.Notes,
	}

	if err := database.DB().WithContext(ctx).Create(invoice).Error; err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return invoice, nil
}

// ListInvoices 发票列表，按创建时间倒序
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	if err := database.DB().WithContext(ctx).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// GetInvoice 查询单张发票
func (s *InvoiceService) GetInvoice(ctx context.Context, id int64) (*model.Invoice, error) {
	var invoice model.Invoice
	if err := database.DB().WithContext(ctx).First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.InvoiceNotFound
		}
		return nil, fmt.Errorf("failed to query invoice: %w", err)
	}
	return &invoice, nil
}

// DeleteInvoice 删除发票（软删除）
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	result := database.DB().WithContext(ctx).Delete(&model.Invoice{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete invoice: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.InvoiceNotFound
	}
	return nil
}
