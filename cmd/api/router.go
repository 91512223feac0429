package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/shared/middleware"
	"newsroom-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupArticleRoutes(v1, c)
		setupRegionRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.GetAll)
		authors.GET("/with-stats", c.AuthorHandler.GetAllWithStats)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.POST("", c.AuthorHandler.Create)
		authors.PUT("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

// ========================================
// ARTICLE ROUTES
// ========================================
func setupArticleRoutes(v1 *gin.RouterGroup, c *container.Container) {
	articles := v1.Group("/articles")
	{
		articles.GET("", c.ArticleHandler.GetAll)
		articles.GET("/:id", c.ArticleHandler.GetByID)
		articles.POST("", c.ArticleHandler.Create)
		articles.PUT("/:id", c.ArticleHandler.Update)
		articles.DELETE("/:id", c.ArticleHandler.Delete)
	}
}

// ========================================
// REGION ROUTES
// ========================================
func setupRegionRoutes(v1 *gin.RouterGroup, c *container.Container) {
	regions := v1.Group("/regions")
	{
		regions.GET("", c.RegionHandler.GetAll)
		regions.GET("/:id", c.RegionHandler.GetByID)
		regions.POST("", c.RegionHandler.Create)
		regions.PUT("/:id", c.RegionHandler.Update)
		regions.DELETE("/:id", c.RegionHandler.Delete)
	}
}

// healthCheckHandler reports database and cache connectivity.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "ok"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = err.Error()
		}

		cacheStatus := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = err.Error()
		}

		status := http.StatusOK
		if dbStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   "up",
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
