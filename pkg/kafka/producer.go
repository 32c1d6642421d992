package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer is a thin wrapper over kafka-go's Writer for fire-and-forget
// JSON publishing keyed by symbol.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a producer for one topic.
func NewProducer(brokers []string, topic string, writeTimeout time.Duration) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka producer: no brokers")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka producer: no topic")
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: writeTimeout,
		Async:        false,
	}
	return &Producer{writer: w}, nil
}

// Publish writes one message.
func (p *Producer) Publish(ctx context.Context, key, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
