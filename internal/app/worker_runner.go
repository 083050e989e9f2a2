package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/transport/kafka"
)

// WorkerRunner runs the route events consumer until the context ends.
type WorkerRunner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewWorkerRunner returns a WorkerRunner that exits the process on failure.
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker, exit: os.Exit}
}

// MustRun consumes until shutdown. Any error other than cancellation is
// logged and ends the process with status 1.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	containerLogger(container).Error("worker stopped", logx.Err(err))
	if r.exit != nil {
		r.exit(1)
	}
}

func registerWorker(container *dig.Container) error {
	return provideAll(container, newRoutesConsumer)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
	producer *kafka.Producer,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: worker container misconfigured")
	}
	defer closeWorker(pool, logger, consumer, producer)

	logger.Info("service-dispatch-worker started")
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer, producer *kafka.Producer) {
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka close error", logx.Err(err))
		}
	}
	closeResources(pool, producer, nil, logger)
}
