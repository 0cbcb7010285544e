// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vidly/internal/delivery/http/middleware"
	"vidly/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GenreHandler    *handler.GenreHandler
	CustomerHandler *handler.CustomerHandler
	MovieHandler    *handler.MovieHandler
	RentalHandler   *handler.RentalHandler
	ReturnHandler   *handler.ReturnHandler
	UserHandler     *handler.UserHandler
	AuthHandler     *handler.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
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
// Writes require a valid token; destructive operations additionally
// require the admin flag.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authenticate := r.params.AuthMiddleware.Authenticate
	requireAdmin := r.params.AuthMiddleware.RequireAdmin

	genres := api.Group("/genres")
	{
		genres.GET("", r.params.GenreHandler.List)
		genres.GET("/:id", r.params.GenreHandler.Get)
		genres.POST("", r.params.GenreHandler.Create, authenticate)
		genres.PUT("/:id", r.params.GenreHandler.Update, authenticate)
		genres.DELETE("/:id", r.params.GenreHandler.Delete, authenticate, requireAdmin)
	}

	customers := api.Group("/customers")
	{
		customers.GET("", r.params.CustomerHandler.List)
		customers.GET("/:id", r.params.CustomerHandler.Get)
		customers.POST("", r.params.CustomerHandler.Create, authenticate)
		customers.PUT("/:id", r.params.CustomerHandler.Update, authenticate)
		customers.DELETE("/:id", r.params.CustomerHandler.Delete, authenticate, requireAdmin)
	}

	movies := api.Group("/movies")
	{
		movies.GET("", r.params.MovieHandler.List)
		movies.GET("/:id", r.params.MovieHandler.Get)
		movies.POST("", r.params.MovieHandler.Create, authenticate)
		movies.PUT("/:id", r.params.MovieHandler.Update, authenticate)
		movies.DELETE("/:id", r.params.MovieHandler.Delete, authenticate, requireAdmin)
	}

	rentals := api.Group("/rentals")
	{
		rentals.GET("", r.params.RentalHandler.List)
		rentals.POST("", r.params.RentalHandler.Create, authenticate)
	}

	api.POST("/returns", r.params.ReturnHandler.Create, authenticate)

	users := api.Group("/users")
	{
		users.POST("", r.params.UserHandler.Register)
		users.GET("", r.params.UserHandler.List, authenticate, requireAdmin)
		users.GET("/me", r.params.UserHandler.Me, authenticate)
	}

	api.POST("/auth", r.params.AuthHandler.Login)
}
