// Package events streams completed triage reports to Kafka so downstream
// rescue-coordination consumers can react to new HIGH-urgency intakes.
package events

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/segmentio/kafka-go"
)

// Publisher sends report events to a single topic.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish sends one report event keyed by record id. Failures are the
// caller's to log; a triage request never fails because Kafka is down.
func (p *Publisher) Publish(ctx context.Context, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	log.Debug("published report event", "key", key)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
