package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/osteria-purchase-ledger/internal/api/handler"
	"github.com/osteria-purchase-ledger/internal/api/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	sessionHandler *handler.SessionHandler,
	entryHandler *handler.EntryHandler,
	metricsHandler *handler.MetricsHandler,
) {
	r.Use(middleware.CorrelationID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	v1 := r.Group("/api/v1")
	{
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", sessionHandler.Create)
			sessions.DELETE("/:id", sessionHandler.Close)

			// Ledger entries
			sessions.POST("/:id/entries", entryHandler.Submit)
			sessions.GET("/:id/entries", entryHandler.List)
			sessions.GET("/:id/entries/recent", entryHandler.Recent)
			sessions.GET("/:id/products", entryHandler.Products)
			sessions.GET("/:id/bounds", entryHandler.Bounds)
			sessions.GET("/:id/export.xlsx", entryHandler.Export)

			// Analytics
			sessions.GET("/:id/metrics/totals", metricsHandler.Totals)
			sessions.GET("/:id/metrics/average", metricsHandler.Average)
			sessions.GET("/:id/metrics/trend", metricsHandler.Trend)
			sessions.GET("/:id/metrics/ranking", metricsHandler.Ranking)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
