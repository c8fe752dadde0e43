package kafka

import (
	"context"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

// Publisher writes keyed messages to a single topic.
type Publisher struct {
	writer writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
	}
	return &Publisher{writer: w}
}

// Publish writes payload under key; messages with the same key keep their order.
func (p *Publisher) Publish(ctx context.Context, key, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
