package bootstrap

import (
	"context"
	"log/slog"

	"corral-store/internal/pkg/clock"
	"corral-store/internal/pkg/config"
	"corral-store/internal/pkg/metrics"
	"corral-store/internal/state"
	"corral-store/internal/usecase"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionRegistry,
	),
)

// NewSessionRegistry builds the per-user session registry. Every new
// session gets a standing metrics subscriber and a first catalog load
// before any caller sees it.
func NewSessionRegistry(
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
	loader *usecase.CatalogLoader,
	m *metrics.StoreMetrics,
) *state.Registry {
	onCreate := func(sess *state.Session) {
		sess.Store.Subscribe(func(state.AppState) {
			m.StateNotifications.Inc()
		})
		if err := loader.Load(context.Background(), sess.Store); err != nil {
			logger.Warn("initial catalog load failed", "user_id", sess.UserID, "error", err)
		}
	}
	return state.NewRegistry(cfg.Session.TTL, clk, logger, onCreate)
}
