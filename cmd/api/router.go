package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/pkg/container"
)

// SetupRouter wires every HTTP route to its handler.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	v1 := router.Group("/api/v1")
	v1.GET("/health", healthCheck(c))

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", c.AuthHandler.Register)
		authGroup.POST("/login", c.AuthHandler.Login)
		authGroup.POST("/refresh", c.AuthHandler.Refresh)
		authGroup.POST("/logout", middleware.Auth(c.JWTManager), c.AuthHandler.Logout)
	}

	protected := v1.Group("")
	protected.Use(middleware.Auth(c.JWTManager))
	{
		authors := protected.Group("/authors")
		{
			authors.POST("", c.AuthorHandler.Create)
			authors.GET("", c.AuthorHandler.List)
			authors.GET("/:id", c.AuthorHandler.GetByID)
			authors.PUT("/:id", c.AuthorHandler.Update)
			authors.DELETE("/:id", c.AuthorHandler.Delete)
		}

		genres := protected.Group("/genres")
		{
			genres.POST("", c.GenreHandler.Create)
			genres.GET("", c.GenreHandler.List)
			genres.GET("/:id", c.GenreHandler.GetByID)
			genres.PUT("/:id", c.GenreHandler.Update)
			genres.DELETE("/:id", c.GenreHandler.Delete)
		}

		books := protected.Group("/books")
		{
			books.POST("", c.BookHandler.Create)
			books.GET("", c.BookHandler.List)
			books.GET("/:id", c.BookHandler.GetByID)
			books.PUT("/:id", c.BookHandler.Update)
			books.DELETE("/:id", c.BookHandler.Delete)
		}

		users := protected.Group("/users")
		{
			users.GET("/me", c.UserHandler.GetMe)
			users.PUT("/me", c.UserHandler.UpdateMe)
			users.DELETE("/me", c.UserHandler.DeleteMe)
		}
	}

	return router
}

func healthCheck(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := gin.H{
			"database": "ok",
			"cache":    "ok",
		}

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			checks["database"] = err.Error()
			status = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(checkCtx); err != nil {
			checks["cache"] = err.Error()
		}

		ctx.JSON(status, gin.H{
			"status":  http.StatusText(status),
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
