// Package router contains routing for the BFF API.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	CartHandler         *handler.CartHandler
	WishlistHandler     *handler.WishlistHandler
	NotificationHandler *handler.NotificationHandler
	SessionMiddleware   *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler      *handler.SessionHandler
	cartHandler         *handler.CartHandler
	wishlistHandler     *handler.WishlistHandler
	notificationHandler *handler.NotificationHandler
	sessionMiddleware   *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:      params.SessionHandler,
		cartHandler:         params.CartHandler,
		wishlistHandler:     params.WishlistHandler,
		notificationHandler: params.NotificationHandler,
		sessionMiddleware:   params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.Current)
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
		sessionGroup.GET("/google", r.sessionHandler.GoogleLogin)
		sessionGroup.GET("/google/callback", r.sessionHandler.GoogleCallback)
		sessionGroup.POST("/checkout-complete", r.sessionHandler.CompleteCheckout)
	}

	cartGroup := e.Group("/cart")
	cartGroup.Use(r.sessionMiddleware.RequireSession)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/refresh", r.cartHandler.RefreshCart)
		cartGroup.POST("/retry", r.cartHandler.RetryFailed)
		cartGroup.DELETE("/remote", r.cartHandler.ClearRemoteCart)
		cartGroup.POST("/lines", r.cartHandler.AddLine)
		cartGroup.PUT("/lines/:productId", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/lines/:productId", r.cartHandler.RemoveLine)
	}

	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.sessionMiddleware.RequireSession)
	{
		wishlistGroup.GET("", r.wishlistHandler.GetWishlist)
		wishlistGroup.POST("", r.wishlistHandler.Add)
		wishlistGroup.DELETE("", r.wishlistHandler.Clear)
		wishlistGroup.POST("/refresh", r.wishlistHandler.RefreshWishlist)
		wishlistGroup.POST("/toggle", r.wishlistHandler.Toggle)
		wishlistGroup.POST("/:productId/move-to-cart", r.wishlistHandler.MoveToCart)
		wishlistGroup.DELETE("/:productId", r.wishlistHandler.Remove)
	}

	notificationsGroup := e.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.List)
		notificationsGroup.DELETE("/:id", r.notificationHandler.Dismiss)
	}
}
