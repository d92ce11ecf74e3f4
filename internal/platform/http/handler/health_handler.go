// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthInfo is reported by the /healthz endpoint.
type HealthInfo struct {
	Upstream string // FX API base URL
	Cache    bool   // whether Redis caching is active
}

// NewHealth returns the /healthz handler. HEAD answers 200 and OPTIONS 204
// without a body; other methods get a JSON status. Responses are never cached.
func NewHealth(info HealthInfo) gin.HandlerFunc {
	cache := "disabled"
	if info.Cache {
		cache = "redis"
	}
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, gin.H{
				"status":   "ok",
				"upstream": info.Upstream,
				"cache":    cache,
			})
		}
	}
}
