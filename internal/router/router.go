package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"AreejShop/config"
	"AreejShop/internal/handler"
	"AreejShop/internal/middleware"
	"AreejShop/pkg/token"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	if config.Cfg.TracingEnabled {
		h.Use(middleware.OpenTelemetryMiddleware())
	}

	// 上传目录静态托管，商品图直接从这里出
	h.Static(config.Cfg.UploadPublicURL, config.Cfg.UploadDir)

	api := h.Group("/api")

	// 认证路由
	auth := api.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware())
	{
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/session", middleware.AuthMiddleware(), handler.GetSession)
		auth.POST("/change-password", middleware.AuthMiddleware(), handler.ChangePassword)
	}

	// 店面公开路由：商品浏览、下单、订单跟踪、店铺信息
	api.GET("/products", handler.ListProducts)
	api.GET("/products/:id", handler.GetProduct)
	api.POST("/orders", handler.CreateOrder)
	api.GET("/orders/track/:number", handler.TrackOrder)
	api.GET("/settings", handler.GetSettings)

	// 考勤路由：列表和签到对登录用户开放，签到接口单独限流
	attendance := api.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	{
		attendance.GET("", middleware.RequirePage("attendance"), handler.ListAttendance)
		attendance.POST("/check-in", middleware.CheckInRateLimitMiddleware(), handler.CheckIn)
		attendance.GET("/qr", middleware.RequireRole(token.RoleAdmin), handler.GetDailyQR)
		attendance.GET("/qr/image", middleware.RequireRole(token.RoleAdmin), handler.GetDailyQRImage)
	}

	// 后台管理路由：页面级权限，员工按 page_access 白名单
	admin := api.Group("", middleware.AuthMiddleware(), middleware.GeneralRateLimitMiddleware())
	if config.Cfg.IsProduction() {
		// 开发环境的前端调试不走同源，CSRF 只在生产开
		admin.Use(middleware.CSRFMiddleware())
	}
	{
		admin.GET("/dashboard", middleware.RequirePage("dashboard"), handler.GetDashboard)

		products := admin.Group("/products", middleware.RequirePage("products"))
		{
			products.POST("", handler.CreateProduct)
			products.PUT("/:id", handler.UpdateProduct)
			products.DELETE("/:id", handler.DeleteProduct)
		}

		orders := admin.Group("/orders", middleware.RequirePage("orders"))
		{
			orders.GET("", handler.ListOrders)
			orders.GET("/:id", handler.GetOrder)
			orders.PATCH("/:id/status", handler.UpdateOrderStatus)
			orders.DELETE("/:id", handler.DeleteOrder)
		}

		invoices := admin.Group("/invoices", middleware.RequirePage("invoices"))
		{
			invoices.GET("", handler.ListInvoices)
			invoices.GET("/:id", handler.GetInvoice)
			invoices.POST("", handler.CreateInvoice)
			invoices.DELETE("/:id", handler.DeleteInvoice)
		}

		customers := admin.Group("/customers", middleware.RequirePage("customers"))
		{
			customers.GET("", handler.ListCustomers)
			customers.GET("/:id", handler.GetCustomer)
			customers.POST("", handler.CreateCustomer)
			customers.PUT("/:id", handler.UpdateCustomer)
			customers.DELETE("/:id", handler.DeleteCustomer)
		}

		// 员工管理、店铺设置、批量清空仅限管理员
		workers := admin.Group("/workers", middleware.RequireRole(token.RoleAdmin))
		{
			workers.GET("", handler.ListWorkers)
			workers.GET("/:id", handler.GetWorker)
			workers.POST("", handler.CreateWorker)
			workers.PUT("/:id", handler.UpdateWorker)
			workers.DELETE("/:id", handler.DeleteWorker)
		}

		admin.PUT("/settings", middleware.RequireRole(token.RoleAdmin), handler.UpdateSettings)
		admin.POST("/admin/clear", middleware.RequireRole(token.RoleAdmin), handler.ClearCollection)
		admin.POST("/upload", middleware.RequirePage("products"), handler.UploadImage)
	}
}
