package bootstrap

import (
	"corral-store/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewStoreMetrics,
	),
)

func NewStoreMetrics() *metrics.StoreMetrics {
	return metrics.New(prometheus.DefaultRegisterer)
}
