package middleware

import (
	"strconv"
	"time"

	"corral-store/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests and observes latency per route. The
// route template is used as the handler label so path parameters do not
// explode the cardinality.
func MetricsMiddleware(m *metrics.StoreMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		handler := c.FullPath()
		if handler == "" {
			handler = "unmatched"
		}

		m.Requests.WithLabelValues(handler, strconv.Itoa(c.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
	}
}
