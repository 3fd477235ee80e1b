// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"housekeep/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	PropertyHandler *handler.PropertyHandler
	AlertHandler    *handler.AlertHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	propertyHandler *handler.PropertyHandler
	alertHandler    *handler.AlertHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		propertyHandler: params.PropertyHandler,
		alertHandler:    params.AlertHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus scrape endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	{
		api.POST("/users/resolve", r.userHandler.ResolveUser)
		api.GET("/users/:id/homes", r.userHandler.ListHomes)

		api.POST("/properties/ingest", r.propertyHandler.IngestPayload)
		api.POST("/properties/fetch", r.propertyHandler.FetchAndIngest)

		api.GET("/homes/:id/alerts", r.alertHandler.ListHomeAlerts)
	}
}
