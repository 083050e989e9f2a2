package app

import (
	"context"
	"errors"

	"ecodeli-dispatch/internal/apperr"
	"ecodeli-dispatch/internal/config"
	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/service/routes"
	"ecodeli-dispatch/internal/transport/kafka"
)

type routeEventHandler interface {
	Handle(ctx context.Context, e routes.Event) error
}

// makeRoutesKafka adapts the processor to the consumer. Validation and
// not-found failures are marked permanent so the message is skipped.
func makeRoutesKafka(p routeEventHandler) kafka.HandleFunc {
	return func(ctx context.Context, event routes.Event) error {
		err := p.Handle(ctx, event)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrNotFound) {
			return kafka.Permanent(err)
		}
		return err
	}
}

func newRoutesConsumer(cfg *config.Config, logger logx.Logger, p *routes.Processor) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.RoutesTopic, makeRoutesKafka(p))
}
