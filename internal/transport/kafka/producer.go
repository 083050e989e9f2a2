package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IBM/sarama"

	"ecodeli-dispatch/internal/domain"
	"ecodeli-dispatch/internal/service/routes"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer wraps a Sarama sync producer
type Producer struct {
	producer sarama.SyncProducer
}

// NewProducer creates a new Kafka producer. It returns nil when no brokers are configured.
func NewProducer(brokers []string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: p}, nil
}

// Send publishes value under key and waits for the broker acknowledgement
// or the end of ctx, whichever comes first.
func (p *Producer) Send(ctx context.Context, topic, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	done := make(chan error, 1)
	go func() {
		_, _, err := p.producer.SendMessage(msg)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("kafka send to %s: %w", topic, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("kafka send to %s: %w", topic, ctx.Err())
	}
}

// Close closes the producer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}

type sender interface {
	Send(ctx context.Context, topic, key string, value []byte) error
}

// RoutePublisher publishes planned route events keyed by route id.
type RoutePublisher struct {
	sender sender
	topic  string
}

// NewRoutePublisher creates a RoutePublisher for topic.
func NewRoutePublisher(s sender, topic string) *RoutePublisher {
	return &RoutePublisher{sender: s, topic: strings.TrimSpace(topic)}
}

// Publish sends e to the routes topic.
func (p *RoutePublisher) Publish(ctx context.Context, e routes.Event) error {
	b, err := json.Marshal(FromDomain(e))
	if err != nil {
		return Permanent(err)
	}
	return p.sender.Send(ctx, p.topic, e.RouteID, b)
}

// NotificationPublisher sends user notifications to the notifications topic.
type NotificationPublisher struct {
	sender sender
	topic  string
}

// NewNotificationPublisher creates a NotificationPublisher for topic.
func NewNotificationPublisher(s sender, topic string) *NotificationPublisher {
	return &NotificationPublisher{sender: s, topic: strings.TrimSpace(topic)}
}

// Notify sends n keyed by the recipient so a user's notifications stay ordered.
func (p *NotificationPublisher) Notify(ctx context.Context, n domain.Notification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return Permanent(err)
	}
	return p.sender.Send(ctx, p.topic, n.UserID, b)
}
