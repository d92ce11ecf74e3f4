// Package router wires HTTP routes to handlers.
package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fx_dashboard/internal/feature/fxrates/transport/handler"
	"fx_dashboard/internal/platform/http/middleware"
)

// NewRouter builds the gin engine. allowedOrigins applies to the JSON
// endpoints; "*" allows any origin.
func NewRouter(logger *slog.Logger, allowedOrigins []string, dashboard *handler.DashboardHandler,
	health gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(logger))
	r.Use(cors.New(corsConfig(allowedOrigins)))
	r.SetHTMLTemplate(handler.Templates())

	// Connectivity check
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	r.GET("/", dashboard.Page)

	d := r.Group("/dashboard")
	{
		d.GET("/state", dashboard.State)
		d.GET("/chart.png", dashboard.Chart)
		d.POST("/history", dashboard.History)
		d.POST("/predict", dashboard.Predict)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
