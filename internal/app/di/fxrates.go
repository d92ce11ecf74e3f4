// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"fx_dashboard/internal/feature/fxrates/adapters/chartpng"
	"fx_dashboard/internal/feature/fxrates/adapters/fxapi"
	"fx_dashboard/internal/feature/fxrates/transport/handler"
	"fx_dashboard/internal/feature/fxrates/usecase"
	"fx_dashboard/internal/platform/cache"
	"fx_dashboard/internal/platform/config"
	infrahttp "fx_dashboard/internal/platform/http"
)

// NewRateSource creates the FX API client. If Redis is available, the client
// is wrapped with the response cache; otherwise it is used directly.
func NewRateSource(cfg *config.Config, rdb *redis.Client) usecase.RateSource {
	client := fxapi.NewClient(
		fxapi.Config{BaseURL: cfg.Upstream.BaseURL, Timeout: cfg.Upstream.Timeout, RateLimit: cfg.Upstream.RateLimit},
		infrahttp.NewHTTPClient(cfg.Upstream.Timeout),
	)
	if rdb == nil {
		return client
	}
	return NewCache(cfg, rdb, client)
}

// NewCache wraps inner with the Redis response cache.
func NewCache(cfg *config.Config, rdb *redis.Client, inner usecase.RateSource) *cache.CachingRateSource {
	ttl := cache.RefreshTTL(cfg.CacheLocation(), cfg.Cache.RefreshHour)
	return cache.NewCachingRateSource(rdb, ttl, inner, cfg.Cache.Namespace)
}

// NewDashboard creates the dashboard use case over the configured rate source.
func NewDashboard(cfg *config.Config, rdb *redis.Client, logger *slog.Logger) *usecase.Dashboard {
	return usecase.NewDashboard(NewRateSource(cfg, rdb), logger, time.Now())
}

// NewDashboardHandler creates the HTTP handler for uc.
func NewDashboardHandler(uc *usecase.Dashboard, logger *slog.Logger) *handler.DashboardHandler {
	return handler.NewDashboardHandler(uc, chartpng.NewRenderer(0, 0), logger)
}
