package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"TradePulse/internal/domain/models"
	pkgkafka "TradePulse/pkg/kafka"
)

// KafkaAlertPublisher fans recorded webhook alerts out to a Kafka topic,
// keyed by symbol so per-symbol ordering is preserved.
type KafkaAlertPublisher struct {
	producer *pkgkafka.Producer
}

func NewKafkaAlertPublisher(producer *pkgkafka.Producer) *KafkaAlertPublisher {
	return &KafkaAlertPublisher{producer: producer}
}

func (p *KafkaAlertPublisher) Publish(ctx context.Context, alert models.Alert) error {
	b, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("encode alert: %w", err)
	}
	return p.producer.Publish(ctx, []byte(alert.Symbol), b)
}

func (p *KafkaAlertPublisher) Close() error {
	return p.producer.Close()
}
