// Package kafkaclient publishes refresh events so operators can watch
// snapshot traffic. Eventing is strictly optional: the proxy works
// identically with no broker configured, and a publish failure never affects
// request handling.
package kafkaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaWriter is the slice of the kafka-go writer the publisher needs.
// This allows for easy mocking in unit tests.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RefreshEvent describes one successful snapshot publish.
type RefreshEvent struct {
	Sequence    uint64    `json:"sequence"`
	GroupCount  int       `json:"groupCount"`
	Source      string    `json:"source"`
	RefreshedAt time.Time `json:"refreshedAt"`
}

// Publisher writes refresh events to a single topic. Safe for concurrent
// use; kafka.Writer serializes internally.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a publisher against the given broker and topic.
func NewPublisher(broker, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	return &Publisher{writer: writer}
}

// PublishRefresh emits one event, keyed by sequence number so consumers can
// spot reordering.
func (p *Publisher) PublishRefresh(ctx context.Context, ev RefreshEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal refresh event: %v", err)
	}
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", ev.Sequence)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write refresh event: %v", err)
	}
	log.Printf("Published refresh event seq=%d count=%d source=%s", ev.Sequence, ev.GroupCount, ev.Source)
	return nil
}

// Close shuts the underlying writer down.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
