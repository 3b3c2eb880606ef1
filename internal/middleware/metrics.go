package middleware

import (
	"strconv"
	"time"

	"homescout-listings/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, c.Request.URL.Path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, c.Request.URL.Path, status).Observe(duration)

		// Cache hits/misses are reported by the listing services via context values.
		if cacheHit, exists := c.Get("cache_hit"); exists && cacheHit.(bool) {
			metrics.CacheHitsTotal.Inc()
		} else if exists {
			metrics.CacheMissesTotal.Inc()
		}
	}
}
