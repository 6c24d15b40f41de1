package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"AreejShop/internal/model"
	"AreejShop/internal/model/dto"
	"AreejShop/internal/queue"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/logger"
	"AreejShop/pkg/metrics"
	"AreejShop/pkg/snowflake"
	"AreejShop/storage/database"
)

type OrderService struct{}

var (
	orderService *OrderService
	orderOnce    sync.Once
)

func Order() *OrderService {
	orderOnce.Do(func() {
		orderService = &OrderService{}
	})
	return orderService
}

// CreateOrder 店面下单。订单号由雪花 ID 生成，创建成功后发布事件，
// 客户档案聚合由 worker 异步完成
func (s *OrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*model.Order, error) {
	orderNumber, err := snowflake.NextOrderNumber()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}

	items := make(model.OrderItems, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			NameAr:    item.NameAr,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	order := &model.Order{
		OrderNumber: orderNumber,
		Items:       items,
		Subtotal:    req.Subtotal,
		VAT:         req.VAT,
		Total:       req.Total,
		Status:      model.OrderStatusPending,
		Customer: model.OrderCustomer{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Email:   req.Customer.Email,
			City:    req.Customer.City,
			Address: req.Customer.Address,
			Notes:   req.Customer.Notes,
		},
		PaymentMethod: paymentMethod,
	}

	if err := database.DB().WithContext(ctx).Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if m := metrics.GetMetrics(); m != nil {
		m.RecordOrderCreated(ctx, order.Total)
	}

	// 发布失败不回滚订单，客户档案聚合可以容忍丢失单条事件
	if err := queue.PublishOrderCreated(order); err != nil {
		logger.Logger.Error("Failed to publish order created event",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
		)
	}

	return order, nil
}

// ListOrders 订单列表，支持状态和订单号筛选
func (s *OrderService) ListOrders(ctx context.Context, query dto.OrderListQuery) ([]model.Order, error) {
	tx := database.DB().WithContext(ctx).Model(&model.Order{})

	if query.Status != "" {
		if !model.ValidOrderStatus(query.Status) {
			return nil, pkgerrors.OrderStatusInvalid
		}
		tx = tx.Where("status = ?", query.Status)
	}
	if query.OrderNumber != "" {
		tx = tx.Where("order_number = ?", query.OrderNumber)
	}

	var orders []model.Order
	if err := tx.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetOrder 查询单个订单
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := database.DB().WithContext(ctx).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.OrderNotFound
		}
		return nil, fmt.Errorf("failed to query order: %w", err)
	}
	return &order, nil
}

// GetOrderByNumber 按订单号查询，店面的订单跟踪入口
func (s *OrderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	var order model.Order
	if err := database.DB().WithContext(ctx).Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.OrderNotFound
		}
		return nil, fmt.Errorf("failed to query order: %w", err)
	}
	return &order, nil
}

// UpdateOrderStatus 更新订单状态
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, pkgerrors.OrderStatusInvalid
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = model.OrderStatus(status)
	if err := database.DB().WithContext(ctx).
		Model(order).
		Update("status", order.Status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	logger.Logger.Info("Order status updated",
		zap.String("order_number", order.OrderNumber),
		zap.String("status", status),
	)
	return order, nil
}

// DeleteOrder 删除订单（软删除）
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	result := database.DB().WithContext(ctx).Delete(&model.Order{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.OrderNotFound
	}
	return nil
}
