package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

// Publisher writes quote events to Kafka for downstream consumers
// (order summary surfaces, analytics). Publish failures are the
// caller's to log; a broker outage must never fail a price calculation.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher over the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish serializes the event as JSON and writes it, keyed by topic.
func (p *Publisher) Publish(topic string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(
		context.Background(),
		kafka.Message{
			Key:   []byte(topic),
			Value: data,
		},
	)
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
