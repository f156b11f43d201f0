package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/cimillas/ultimate-shop/services/order/internal/domain"
)

// Writer is the slice of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher emits order-placed events to a Kafka topic, keyed by order
// number so all messages for one order land on the same partition.
type Publisher struct {
	writer Writer
}

// NewWriter builds an async writer for the given brokers and topic.
// Async means WriteMessages enqueues without waiting for broker acks;
// delivery failures are reported through the completion callback and the
// service-level contract stays fire-and-forget.
func NewWriter(brokers []string, topic string, logger *log.Logger) *kafka.Writer {
	if logger == nil {
		logger = log.Default()
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Printf("kafka delivery failed topic=%s messages=%d: %v", topic, len(messages), err)
			}
		},
	}
}

func NewPublisher(writer Writer) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) PublishOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order-placed event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderNumber),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("write order-placed event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
