// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	BusinessHandler     *handler.BusinessHandler
	ProductHandler      *handler.ProductHandler
	OrderHandler        *handler.OrderHandler
	ReviewHandler       *handler.ReviewHandler
	PromoHandler        *handler.PromoHandler
	NotificationHandler *handler.NotificationHandler
	LoyaltyHandler      *handler.LoyaltyHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/customer", p.UserHandler.RegisterCustomer)
		authGroup.POST("/register/merchant", p.UserHandler.RegisterMerchant)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/login/google", p.UserHandler.GoogleLogin)
	}

	// Public storefront catalog
	businessGroup := e.Group("/businesses")
	{
		businessGroup.GET("", p.BusinessHandler.ListBusinesses)
		businessGroup.GET("/:id", p.BusinessHandler.GetBusiness)
		businessGroup.GET("/:id/qr", p.BusinessHandler.GetStorefrontQR)
		businessGroup.GET("/:id/products", p.ProductHandler.ListBusinessProducts)
		businessGroup.GET("/:id/reviews", p.ReviewHandler.ListBusinessReviews)
		businessGroup.POST("/:id/promos/validate", p.PromoHandler.ValidatePromoCode)
	}
	e.GET("/products/:id", p.ProductHandler.GetProduct)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(p.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", p.UserHandler.GetProfile)
		userGroup.PUT("/profile", p.UserHandler.UpdateProfile)
		userGroup.GET("/loyalty", p.LoyaltyHandler.GetAccount)

		userGroup.POST("/orders", p.OrderHandler.PlaceOrder)
		userGroup.GET("/orders", p.OrderHandler.ListOwnOrders)
		userGroup.GET("/orders/:id", p.OrderHandler.GetOrder)

		userGroup.POST("/businesses/:id/reviews", p.ReviewHandler.CreateReview)
		userGroup.DELETE("/businesses/:id/reviews", p.ReviewHandler.DeleteReview)

		userGroup.GET("/notifications", p.NotificationHandler.ListNotifications)
		userGroup.POST("/notifications/read-all", p.NotificationHandler.MarkAllRead)
		userGroup.POST("/notifications/:id/read", p.NotificationHandler.MarkRead)
		userGroup.POST("/devices", p.NotificationHandler.RegisterDevice)
	}

	// Merchant routes that require authentication and the "merchant" role
	merchantGroup := e.Group("/merchant")
	merchantGroup.Use(p.AuthMiddleware.Authenticate)
	merchantGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleMerchant.String()))
	{
		merchantGroup.POST("/businesses", p.BusinessHandler.CreateBusiness)
		merchantGroup.GET("/businesses", p.BusinessHandler.GetOwnBusinesses)
		merchantGroup.PUT("/businesses/draft", p.BusinessHandler.SaveBusinessDraft)
		merchantGroup.GET("/businesses/draft", p.BusinessHandler.GetBusinessDraft)
		merchantGroup.DELETE("/businesses/draft", p.BusinessHandler.DiscardBusinessDraft)
		merchantGroup.PUT("/businesses/:id", p.BusinessHandler.UpdateBusiness)
		merchantGroup.DELETE("/businesses/:id", p.BusinessHandler.DeleteBusiness)
		merchantGroup.PATCH("/businesses/:id/status", p.BusinessHandler.SetBusinessStatus)
		merchantGroup.POST("/businesses/:id/image", p.BusinessHandler.UploadBusinessImage)

		merchantGroup.POST("/businesses/:id/products", p.ProductHandler.CreateProduct)
		merchantGroup.PUT("/products/:id", p.ProductHandler.UpdateProduct)
		merchantGroup.DELETE("/products/:id", p.ProductHandler.DeleteProduct)
		merchantGroup.PATCH("/products/:id/stock", p.ProductHandler.SetProductStock)
		merchantGroup.POST("/products/:id/image", p.ProductHandler.UploadProductImage)

		merchantGroup.GET("/businesses/:id/orders", p.OrderHandler.ListBusinessOrders)
		merchantGroup.PATCH("/orders/:id/status", p.OrderHandler.UpdateOrderStatus)

		merchantGroup.POST("/businesses/:id/promos", p.PromoHandler.CreatePromoCode)
		merchantGroup.GET("/businesses/:id/promos", p.PromoHandler.ListBusinessPromoCodes)
		merchantGroup.PUT("/promos/:id", p.PromoHandler.UpdatePromoCode)
		merchantGroup.DELETE("/promos/:id", p.PromoHandler.DeletePromoCode)

		merchantGroup.POST("/businesses/:id/broadcast", p.NotificationHandler.BroadcastPromo)
	}
}
