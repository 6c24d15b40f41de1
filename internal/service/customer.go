package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"AreejShop/internal/model"
	"AreejShop/internal/model/dto"
	pkgerrors "AreejShop/pkg/errors"
	"AreejShop/pkg/logger"
	"AreejShop/storage/database"
)

type CustomerService struct{}

var (
	customerService *CustomerService
	customerOnce    sync.Once
)

func Customer() *CustomerService {
	customerOnce.Do(func() {
		customerService = &CustomerService{}
	})
	return customerService
}

// ListCustomers 客户列表，按累计消费倒序
func (s *CustomerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := database.DB().WithContext(ctx).
		Order("total_spent DESC").
		Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// GetCustomer 查询单个客户
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	var customer model.Customer
	if err := database.DB().WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.CustomerNotFound
		}
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}
	return &customer, nil
}

// CreateCustomer 手工创建客户档案
func (s *CustomerService) CreateCustomer(ctx context.Context, req dto.CustomerUpsertRequest) (*model.Customer, error) {
	customer := &model.Customer{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		City:        req.City,
		Address:     req.Address,
		Notes:       req.Notes,
		LoyaltyTier: model.LoyaltyBronze,
	}
	if err := database.DB().WithContext(ctx).Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// UpdateCustomer 更新客户档案的联系信息，聚合字段不可手工改
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int64, req dto.CustomerUpsertRequest) (*model.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.City = req.City
	customer.Address = req.Address
	customer.Notes = req.Notes

	if err := database.DB().WithContext(ctx).
		Model(customer).
		Select("name", "phone", "email", "city", "address", "notes").
		Updates(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// DeleteCustomer 删除客户档案（软删除）
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	result := database.DB().WithContext(ctx).Delete(&model.Customer{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pkgerrors.CustomerNotFound
	}
	return nil
}

// ApplyOrder 订单事件的客户档案聚合：按手机号 upsert，
// 累加订单数和消费额，积分按总额向下取整，等级随消费额晋升
func (s *CustomerService) ApplyOrder(ctx context.Context, msg model.OrderCreatedMessage) error {
	if msg.CustomerPhone == "" {
		logger.Logger.Warn("Order without customer phone, skipping aggregation",
			zap.String("order_number", msg.OrderNumber),
		)
		return nil
	}

	return database.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer model.Customer
		err := tx.Where("phone = ?", msg.CustomerPhone).First(&customer).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			customer = model.Customer{
				Name:        msg.CustomerName,
				Phone:       msg.CustomerPhone,
				Email:       msg.CustomerEmail,
				City:        msg.CustomerCity,
				Address:     msg.CustomerAddr,
				LoyaltyTier: model.LoyaltyBronze,
			}
			if err := tx.Create(&customer).Error; err != nil {
				return fmt.Errorf("failed to create customer from order: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to query customer: %w", err)
		}

		customer.TotalOrders++
		customer.TotalSpent += msg.Total
		customer.LoyaltyPoints += int(math.Floor(msg.Total))
		customer.LoyaltyTier = model.TierForSpent(customer.TotalSpent)

		// 最近一单的联系信息覆盖旧档案
		if msg.CustomerName != "" {
			customer.Name = msg.CustomerName
		}
		if msg.CustomerEmail != "" {
			customer.Email = msg.CustomerEmail
		}
		if msg.CustomerCity != "" {
			customer.City = msg.CustomerCity
		}
		if msg.CustomerAddr != "" {
			customer.Address = msg.CustomerAddr
		}

		if err := tx.Save(&customer).Error; err != nil {
			return fmt.Errorf("failed to update customer aggregates: %w", err)
		}

		logger.Logger.Info("Customer aggregates updated",
			zap.String("phone", customer.Phone),
			zap.Int("total_orders", customer.TotalOrders),
			zap.String("tier", string(customer.LoyaltyTier)),
		)
		return nil
	})
}
