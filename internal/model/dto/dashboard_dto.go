package dto

import "AreejShop/internal/model"

// DashboardStats 后台首页统计
type DashboardStats struct {
	TotalOrders    int64   `json:"total_orders"`
	TotalProducts  int64   `json:"total_products"`
	TotalCustomers int64   `json:"total_customers"`
	TotalInvoices  int64   `json:"total_invoices"`
	TotalRevenue   float64 `json:"total_revenue"` // 不含已取消订单
}

// DashboardData 后台首页数据
type DashboardData struct {
	Stats          DashboardStats  `json:"stats"`
	RecentOrders   []model.Order   `json:"recent_orders"`
	RecentInvoices []model.Invoice `json:"recent_invoices"`
}

// ClearCollectionRequest 批量清空请求，仅允许 invoices/orders/customers，
// 考勤记录永远不在可清空范围内
type ClearCollectionRequest struct {
	Collection string `json:"collection" vd:"len($)>0"`
}

// UploadData 上传结果
type UploadData struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
