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
	"AreejShop/storage/database"
)

type ProductService struct{}

var (
	productService *ProductService
	productOnce    sync.Once
)

func Product() *ProductService {
	productOnce.Do(func() {
		productService = &ProductService{}
	})
	return productService
}

// ListProducts 店面商品列表，支持分类/精选/库存筛选
func (s *ProductService) ListProducts(ctx context.Context, query dto.ProductListQuery) ([]model.Product, error) {
	tx := database.DB().WithContext(ctx).Model(&model.Product{})

	if query.Category != "" {
		tx = tx.Where("category = ?", query.Category)
	}
	if query.Featured != nil {
		tx = tx.Where("featured = ?", *query.Featured)
	}
	if query.InStock != nil {
		tx = tx.Where("in_stock = ?", *query.InStock)
	}

	var products []model.Product
	if err := tx.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct 查询单个商品
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := database.DB().WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ProductNotFound
		}
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return &product, nil
}

// CreateProduct 新建商品
func (s *ProductService) CreateProduct(ctx context.Context, req dto.ProductUpsertRequest) (*model.Product, error) {
	discountType := model.DiscountType(req.DiscountType)
	if discountType == "" {
		discountType = model.DiscountPercentage
	}
	category := req.Category
	if category == "" {
		category = "عام"
	}

	product := &model.Product{
		Name:          req.Name,
		NameAr:        req.NameAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Price:         req.Price,
		Category:      category,
		Images:        req.Images,
		InStock:       true,
		Discount:      req.Discount,
		DiscountType:  discountType,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}

	if err := database.DB().WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// UpdateProduct 更新商品
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req dto.ProductUpsertRequest) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.NameAr = req.NameAr
	product.Description = req.Description
	product.DescriptionAr = req.DescriptionAr
	product.Price = req.Price
	product.Category = req.Category
	product.Images = req.Images
	product.Discount = req.Discount
	if req.DiscountType != "" {
		product.DiscountType = model.DiscountType(req.DiscountType)
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}

	if err := database.DB().WithContext(ctx).Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// DeleteProduct 删除商品（软删除）
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	result := database.DB().WithContext(ctx).Delete(&model.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ProductNotFound
	}
	return nil
}
