package bootstrap

import (
	"context"

	"corral-store/internal/events"
	"corral-store/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) events.Publisher {
	pub := events.NewKafkaPublisher(cfg.Events.KafkaBrokers, cfg.Events.SaleTopic)

	if closer, ok := pub.(*events.KafkaPublisher); ok {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return closer.Close()
			},
		})
	}
	return pub
}
