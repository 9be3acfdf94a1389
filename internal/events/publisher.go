package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// SaleConfirmed is published after a checkout reaches its terminal success
// state. Publishing is best-effort: a delivery failure is logged, never
// surfaced to the checkout caller.
type SaleConfirmed struct {
	SaleID     uuid.UUID   `json:"sale_id"`
	CustomerID uuid.UUID   `json:"customer_id"`
	TotalCents int64       `json:"total_cents"`
	ItemIDs    []uuid.UUID `json:"item_ids"`
	OccurredAt time.Time   `json:"occurred_at"`
}

type Publisher interface {
	PublishSaleConfirmed(ctx context.Context, evt SaleConfirmed) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher builds a publisher from a comma-separated broker list.
// An empty list returns a no-op publisher.
func NewKafkaPublisher(brokersCSV, topic string) Publisher {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return NopPublisher{}
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *KafkaPublisher) PublishSaleConfirmed(ctx context.Context, evt SaleConfirmed) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.SaleID.String()),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishSaleConfirmed(_ context.Context, evt SaleConfirmed) error {
	slog.Debug("sale event publishing disabled", "sale_id", evt.SaleID)
	return nil
}
