package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"library-api/internal/shared/middleware"
	"library-api/pkg/container"
)

// SetupRouter registers every route explicitly on a fresh engine.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)
	if c.Config.Tracing.Enabled {
		router.Use(otelgin.Middleware(c.Config.App.Name))
	}

	var observers []middleware.SessionObserver
	if c.Config.Metrics.Enabled {
		router.Use(middleware.Metrics(c.Metrics))
		router.GET("/metrics", gin.WrapH(c.Metrics.Handler()))
		observers = append(observers, c.Metrics)
	}

	router.GET("/health", healthCheckHandler(c))

	session := middleware.DBSession(c.Store, observers...)
	setupAuthorRoutes(router, c, session)
	setupBookRoutes(router, c, session)

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(router *gin.Engine, c *container.Container, session gin.HandlerFunc) {
	authors := router.Group("/authors", session)
	{
		authors.GET("/", c.AuthorHandler.List)
		authors.POST("/", c.AuthorHandler.Create)
		authors.GET("/:id/", c.AuthorHandler.GetByID)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(router *gin.Engine, c *container.Container, session gin.HandlerFunc) {
	books := router.Group("/books", session)
	{
		books.GET("/", c.BookHandler.ListBooks)
		books.POST("/", c.BookHandler.CreateBook)
		books.GET("/:id/", c.BookHandler.GetBookDetail)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"database":  "ok",
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.Store.Ping(ctx); err != nil {
			health["status"] = "degraded"
			health["database"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, health)
			return
		}

		c.JSON(http.StatusOK, health)
	}
}
