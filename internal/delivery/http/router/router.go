// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"editais/internal/delivery/http/middleware"
	"editais/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	TenderHandler  *handler.TenderHandler
	FilterHandler  *handler.FilterHandler
	AlertHandler   *handler.AlertHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	tenderHandler  *handler.TenderHandler
	filterHandler  *handler.FilterHandler
	alertHandler   *handler.AlertHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		tenderHandler:  params.TenderHandler,
		filterHandler:  params.FilterHandler,
		alertHandler:   params.AlertHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Everything below requires a valid access token
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	tenderGroup := api.Group("/tenders")
	{
		tenderGroup.GET("", r.tenderHandler.ListTenders)
		tenderGroup.POST("/refresh", r.tenderHandler.Refresh)
		tenderGroup.GET("/:id", r.tenderHandler.GetTender)
	}

	filterGroup := api.Group("/filters")
	{
		filterGroup.POST("", r.filterHandler.CreateFilter)
		filterGroup.GET("", r.filterHandler.ListFilters)
		filterGroup.GET("/active", r.filterHandler.GetActiveFilter)
		filterGroup.PUT("/:id", r.filterHandler.UpdateFilter)
		filterGroup.DELETE("/:id", r.filterHandler.DeleteFilter)
	}

	alertGroup := api.Group("/alerts")
	{
		alertGroup.POST("/send", r.alertHandler.SendAlert)
		alertGroup.GET("/history", r.alertHandler.GetHistory)
	}

	api.GET("/stats", r.tenderHandler.GetStats)
}
