package repository

import (
	"context"
	"encoding/json"
	"luxefurnish/domain"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaOrderPublisher struct {
	writer *kafka.Writer
}

// NewKafkaOrderPublisher writes order events to topic, keyed by order id so
// events for one order stay on one partition.
func NewKafkaOrderPublisher(brokers []string, topic string) *KafkaOrderPublisher {
	return &KafkaOrderPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

func (p *KafkaOrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
}

func (p *KafkaOrderPublisher) Close() error {
	return p.writer.Close()
}

type noopOrderPublisher struct{}

// NewNoopOrderPublisher is used when no brokers are configured.
func NewNoopOrderPublisher() domain.OrderEventPublisher {
	return noopOrderPublisher{}
}

func (noopOrderPublisher) PublishOrderEvent(context.Context, domain.OrderEvent) error {
	return nil
}
