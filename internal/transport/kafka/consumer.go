package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/service/routes"
)

const (
	consumerClientID    = "service-dispatch-worker"
	consumeRetryDelay   = time.Second
	maxConsumeRetryWait = 30 * time.Second
)

// HandleFunc processes one route event.
type HandleFunc func(context.Context, routes.Event) error

var newConsumerGroup = sarama.NewConsumerGroup

var errMissingRouteID = errors.New("route_id is empty")

// Consumer reads route events from a consumer group and hands them to a
// HandleFunc. Offsets are marked only after the handler succeeds or the
// message is known to be unprocessable.
type Consumer struct {
	group   sarama.ConsumerGroup
	topic   string
	handler HandleFunc
	logger  logx.Logger
	backoff time.Duration
}

// NewConsumer joins groupID on topic. It returns nil, nil when Kafka is not
// configured so callers can treat a nil *Consumer as disabled.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}

	cfg := sarama.NewConfig()
	cfg.ClientID = consumerClientID
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategySticky()}

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:   group,
		topic:   topic,
		handler: h,
		logger:  logger.With(logx.String("topic", topic), logx.String("group", groupID)),
		backoff: consumeRetryDelay,
	}, nil
}

// Run consumes until ctx ends. A failed session is retried with a doubling
// delay capped at maxConsumeRetryWait; a successful one resets the delay.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	h := &groupHandler{c: c}
	wait := c.backoff
	for {
		err := c.group.Consume(ctx, []string{c.topic}, h)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			wait = c.backoff
			continue
		}

		c.logger.Error("kafka consume error", logx.Err(err), logx.Duration("retry_in", wait))
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		if wait *= 2; wait > maxConsumeRetryWait {
			wait = maxConsumeRetryWait
		}
	}
}

// Close leaves the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim returns the handler error of a retryable failure, which ends
// the session so the message is redelivered.
func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case <-sess.Context().Done():
			return nil
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.process(sess.Context(), msg); err != nil {
				return err
			}
			sess.MarkMessage(msg, "")
		}
	}
}

// process returns nil for messages that should be committed.
func (h *groupHandler) process(ctx context.Context, msg *sarama.ConsumerMessage) error {
	log := h.c.logger.With(logx.Int("partition", int(msg.Partition)), logx.Int64("offset", msg.Offset))

	ev, err := decodeEvent(msg.Value)
	if err != nil {
		log.Warn("route event dropped: undecodable", logx.Err(err))
		return nil
	}
	log = log.With(logx.String("route_id", ev.RouteID), logx.String("type", ev.Type))

	err = h.c.handler(ctx, ev)
	switch {
	case err == nil:
		return nil
	case IsPermanent(err):
		log.Warn("route event dropped: handler rejected it", logx.Err(err))
		return nil
	default:
		log.Error("route event failed, will be redelivered", logx.Err(err))
		return err
	}
}

func decodeEvent(raw []byte) (routes.Event, error) {
	var dto EventDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return routes.Event{}, err
	}
	ev := ToDomain(dto)
	if ev.RouteID == "" {
		return routes.Event{}, errMissingRouteID
	}
	return ev, nil
}
