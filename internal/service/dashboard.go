package service

import (
	"context"
	"fmt"
	"sync"

	"AreejShop/internal/model"
	"AreejShop/internal/model/dto"
	"AreejShop/storage/database"
)

const recentLimit = 5

type DashboardService struct{}

var (
	dashboardService *DashboardService
	dashboardOnce    sync.Once
)

func Dashboard() *DashboardService {
	dashboardOnce.Do(func() {
		dashboardService = &DashboardService{}
	})
	return dashboardService
}

// GetDashboard 后台首页：统计数字 + 最近订单/发票。
// 营收不计已取消订单
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardData, error) {
	db := database.DB().WithContext(ctx)
	var stats dto.DashboardStats

	if err := db.Model(&model.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if err := db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := db.Model(&model.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}
	if err := db.Model(&model.Invoice{}).Count(&stats.TotalInvoices).Error; err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}

	if err := db.Model(&model.Order{}).
		Where("status <> ?", model.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	var recentOrders []model.Order
	if err := db.Order("created_at DESC").Limit(recentLimit).Find(&recentOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent orders: %w", err)
	}

	var recentInvoices []model.Invoice
	if err := db.Order("created_at DESC").Limit(recentLimit).Find(&recentInvoices).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent invoices: %w", err)
	}

	return &dto.DashboardData{
		Stats:          stats,
		RecentOrders:   recentOrders,
		RecentInvoices: recentInvoices,
	}, nil
}
