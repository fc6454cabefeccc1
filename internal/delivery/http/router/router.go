// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"homeplate/internal/delivery/http/middleware"
	"homeplate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AdminHandler    *handler.AdminHandler
	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	ReportHandler   *handler.ReportHandler
	BusinessHandler *handler.BusinessHandler
	AuthMiddleware  *middleware.AuthMiddleware
	RateLimit       *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	admins    *handler.AdminHandler
	users     *handler.UserHandler
	products  *handler.ProductHandler
	orders    *handler.OrderHandler
	reports   *handler.ReportHandler
	business  *handler.BusinessHandler
	auth      *middleware.AuthMiddleware
	rateLimit *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		admins:    params.AdminHandler,
		users:     params.UserHandler,
		products:  params.ProductHandler,
		orders:    params.OrderHandler,
		reports:   params.ReportHandler,
		business:  params.BusinessHandler,
		auth:      params.AuthMiddleware,
		rateLimit: params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public surface: catalog and the shop profile card.
	api.GET("/products", r.products.List)
	api.GET("/admin/business-profile", r.business.Current)

	// Sessions. Logins are rate limited per client IP.
	api.POST("/admin/login", r.admins.Login, r.rateLimit.Limit)
	api.POST("/admin/logout", r.admins.Logout)
	api.POST("/user/login", r.users.Login, r.rateLimit.Limit)
	api.POST("/user/logout", r.users.Logout)

	// Customer session routes.
	userGroup := api.Group("/user", r.auth.RequireUser)
	{
		userGroup.GET("/profile", r.users.GetProfile)
		userGroup.PUT("/profile", r.users.UpdateProfile)
	}
	api.POST("/orders", r.orders.Place, r.auth.RequireUser)
	api.GET("/my-orders", r.orders.MyOrders, r.auth.RequireUser)
	api.PUT("/orders/:id", r.orders.Update, r.auth.RequireUser)

	// Owner or admin.
	api.GET("/orders/:id", r.orders.Detail, r.auth.RequireSession)
	api.GET("/orders/:id/payment/qr", r.orders.PaymentQR, r.auth.RequireSession)

	// Admin order mutations sit on the shared /orders path.
	api.PUT("/orders/:id/status", r.orders.SetStatus, r.auth.RequireAdmin)
	api.POST("/orders/:id/payment", r.orders.RecordPayment, r.auth.RequireAdmin)

	// Back office.
	adminGroup := api.Group("/admin", r.auth.RequireAdmin)
	{
		adminGroup.POST("/products", r.products.Create)
		adminGroup.PUT("/products/:id", r.products.Update)
		adminGroup.DELETE("/products/:id", r.products.Delete)

		adminGroup.GET("/orders", r.orders.ListAll)

		adminGroup.GET("/revenue/breakdown", r.reports.RevenueBreakdown)
		adminGroup.GET("/revenue/daily", r.reports.DailyRevenue)
		adminGroup.GET("/users", r.reports.UsersDirectory)
		adminGroup.GET("/users/:mobile/orders", r.reports.UserLedger)
		adminGroup.PUT("/users/:mobile", r.users.AdminUpdateUser)
		adminGroup.DELETE("/users/:mobile", r.users.AdminDeleteUser)
		adminGroup.GET("/stats", r.reports.Dashboard)

		// The profile read is public above; only the save needs a session.
		adminGroup.POST("/business-profile", r.business.Save)
	}

	// Dashboard aliases of the reporting endpoints.
	dashboardGroup := api.Group("/dashboard", r.auth.RequireAdmin)
	{
		dashboardGroup.GET("/stats", r.reports.Dashboard)
		dashboardGroup.GET("/revenue/breakdown", r.reports.RevenueBreakdown)
		dashboardGroup.GET("/revenue/daily", r.reports.DailyRevenue)
	}
}
