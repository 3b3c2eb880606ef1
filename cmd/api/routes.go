package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"homescout-listings/pkg/cache"
	"homescout-listings/pkg/config"
	"homescout-listings/pkg/database"
	"homescout-listings/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "homescout-listings/docs"
	_ "net/http/pprof"
)

// setupRoutes configures all routes
func (a *App) setupRoutes() {
	a.setupStaticRoutes()
	a.setupHealthCheck()
	a.setupAPIRoutes()
}

// setupStaticRoutes configures documentation and operational endpoints
func (a *App) setupStaticRoutes() {
	// Serve Swagger UI
	a.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Expose pprof profiling endpoints (disable in production)
	if os.Getenv("ENV") != "production" {
		a.Router.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	// Expose Prometheus metrics endpoint
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// setupHealthCheck configures the health check endpoint. Memory and table
// modes have no backing connections to probe, so they always report ok.
func (a *App) setupHealthCheck() {
	a.Router.GET("/health", func(c *gin.Context) {
		if a.Config.Store.Mode != config.StoreModeMongo {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "store": a.Config.Store.Mode})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := database.MongoClient.Ping(ctx, nil); err != nil {
			logger.GlobalLogger.Printf("MongoDB ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "MongoDB unavailable"})
			return
		}

		if _, err := cache.RedisClient.Ping(ctx).Result(); err != nil {
			logger.GlobalLogger.Printf("Redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Redis unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": a.Config.Store.Mode})
	})
}

// setupAPIRoutes configures API routes
func (a *App) setupAPIRoutes() {
	api := a.Router.Group("/api")
	{
		properties := api.Group("/properties")
		{
			properties.GET("", a.PropertyHandler.GetProperties)
			properties.GET("/suggestions", a.PropertyHandler.GetSuggestions)
			properties.GET("/:id", a.PropertyHandler.GetPropertyByID)
		}

		mortgage := api.Group("/mortgage")
		{
			mortgage.POST("/calculate", a.MortgageHandler.Calculate)
		}

		saved := api.Group("/saved")
		{
			saved.GET("", a.SavedHandler.ListSaved)
			saved.POST("", a.SavedHandler.SaveProperty)
			saved.GET("/:propertyId", a.SavedHandler.GetSaved)
			saved.DELETE("/:propertyId", a.SavedHandler.UnsaveProperty)
		}
	}
}
