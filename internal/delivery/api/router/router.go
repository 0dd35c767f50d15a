// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vendorradar/internal/delivery/api/middleware"
	"vendorradar/internal/delivery/api/router/handler"
	"vendorradar/internal/delivery/realtime"
	"vendorradar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	SearchHandler   *handler.SearchHandler
	VendorHandler   *handler.VendorHandler
	CustomerHandler *handler.CustomerHandler
	ProductHandler  *handler.ProductHandler
	Realtime        *realtime.Handler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	searchHandler   *handler.SearchHandler
	vendorHandler   *handler.VendorHandler
	customerHandler *handler.CustomerHandler
	productHandler  *handler.ProductHandler
	realtime        *realtime.Handler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		searchHandler:   params.SearchHandler,
		vendorHandler:   params.VendorHandler,
		customerHandler: params.CustomerHandler,
		productHandler:  params.ProductHandler,
		realtime:        params.Realtime,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/search", r.searchHandler.Search)

	// Live locations in, vendor events out.
	e.GET("/ws", r.realtime.Serve)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/vendor/register", r.authHandler.RegisterVendor)
		authGroup.POST("/vendor/login", r.authHandler.LoginVendor)
		authGroup.POST("/customer/register", r.authHandler.RegisterCustomer)
		authGroup.POST("/customer/login", r.authHandler.LoginCustomer)

		accountGroup := authGroup.Group("")
		accountGroup.Use(r.authMiddleware.Authenticate)
		accountGroup.GET("/me", r.authHandler.Me)
		accountGroup.PUT("/change-password", r.authHandler.ChangePassword)
	}

	vendorsGroup := e.Group("/vendors")
	{
		vendorsGroup.GET("/nearby", r.vendorHandler.Nearby)

		ownGroup := vendorsGroup.Group("")
		ownGroup.Use(r.authMiddleware.Authenticate)
		ownGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
		ownGroup.GET("/profile", r.vendorHandler.GetProfile)
		ownGroup.PUT("/profile", r.vendorHandler.UpdateProfile)
		ownGroup.PUT("/location", r.vendorHandler.UpdateLocation)
		ownGroup.PUT("/availability", r.vendorHandler.UpdateAvailability)

		// Registered last so the static paths above win.
		vendorsGroup.GET("/:id", r.vendorHandler.GetPublicVendor)
	}

	customersGroup := e.Group("/customers")
	customersGroup.Use(r.authMiddleware.Authenticate)
	customersGroup.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		customersGroup.PUT("/preferences", r.customerHandler.UpdatePreferences)
		customersGroup.PUT("/location", r.customerHandler.UpdateLocation)
		customersGroup.GET("/nearby-vendors", r.customerHandler.NearbyVendors)
		customersGroup.POST("/search-history", r.customerHandler.AddSearchHistory)
		customersGroup.GET("/search-history", r.customerHandler.SearchHistory)
		customersGroup.GET("/suggestions", r.customerHandler.Suggestions)
	}

	productsGroup := e.Group("/products")
	productsGroup.Use(r.authMiddleware.Authenticate)
	productsGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		productsGroup.POST("", r.productHandler.Create)
		productsGroup.GET("", r.productHandler.List)
		productsGroup.GET("/:id", r.productHandler.Get)
		productsGroup.PUT("/:id", r.productHandler.Update)
		productsGroup.DELETE("/:id", r.productHandler.Delete)
		productsGroup.PUT("/:id/availability", r.productHandler.UpdateAvailability)
	}
}
