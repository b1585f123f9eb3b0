// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"seatech/internal/delivery/http/middleware"
	"seatech/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	QuoteHandler   *handler.QuoteHandler
	ProfileHandler *handler.ProfileHandler
	DealerHandler  *handler.DealerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	quoteHandler   *handler.QuoteHandler
	profileHandler *handler.ProfileHandler
	dealerHandler  *handler.DealerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		quoteHandler:   params.QuoteHandler,
		profileHandler: params.ProfileHandler,
		dealerHandler:  params.DealerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Public catalogue routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalogHandler.ListProducts)
		catalogGroup.GET("/products/:id", r.catalogHandler.GetProduct)
		catalogGroup.GET("/categories", r.catalogHandler.ListCategories)
	}

	// Cart routes, one quote-request cart per authenticated account
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productId", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/submit", r.cartHandler.Submit)
	}

	// Submitted quotes dashboard
	quoteGroup := e.Group("/quotes")
	quoteGroup.Use(r.authMiddleware.Authenticate)
	{
		quoteGroup.GET("", r.quoteHandler.ListQuotes)
		quoteGroup.GET("/:id", r.quoteHandler.GetQuote)
		quoteGroup.GET("/:id/qr", r.quoteHandler.QuoteQR)
	}

	// Profile routes
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.SaveProfile)
	}

	// Dealer authorization applications
	dealerGroup := e.Group("/dealer-applications")
	dealerGroup.Use(r.authMiddleware.Authenticate)
	{
		dealerGroup.POST("", r.dealerHandler.SubmitApplication)
		dealerGroup.GET("", r.dealerHandler.ListApplications)
	}
}
