// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"users/internal/delivery/http/middleware"
	"users/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)

	// Everything else requires an API key. Applied per route so unknown paths still 404.
	auth := r.authMiddleware.Authenticate
	e.POST("/create-user", r.userHandler.CreateUser, auth)
	e.POST("/update-user/:username", r.userHandler.UpdateUser, auth)
	e.POST("/find-or-create", r.userHandler.FindOrCreate, auth)
	e.GET("/find/:username", r.userHandler.FindUser, auth)
	e.DELETE("/destroy/:username", r.userHandler.DestroyUser, auth)
	e.POST("/passwordCheck", r.userHandler.PasswordCheck, auth)
	e.GET("/list", r.userHandler.ListUsers, auth)
}
