package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/service/assignment"
	"ecodeli-dispatch/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP API
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a Runner with the default run function
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP server using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return bootLogger()
	}
	return logger
}

type runIn struct {
	dig.In

	Ctx         context.Context
	Server      *http.Server
	Pprof       *http.Server `name:"pprof_server" optional:"true"`
	Pool        *pgxpool.Pool
	Logger      logx.Logger
	Assignments *assignment.Service `optional:"true"`
	Producer    *kafka.Producer     `optional:"true"`
	Redis       *redis.Client       `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in runIn) error {
	errCh := make(chan error, 2)
	startServer(in.Server, in.Logger, "service-dispatch listening", errCh)
	if in.Pprof != nil {
		startServer(in.Pprof, in.Logger, "pprof listening", errCh)
	}

	var err error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down service-dispatch")
		err = in.Ctx.Err()
	case err = <-errCh:
		in.Logger.Error("listen error", logx.Err(err))
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
	}
	drainNotifications(in.Assignments, in.Logger, shutdownTimeout)
	closeResources(in.Pool, in.Producer, in.Redis, in.Logger)
	return err
}

func startServer(server *http.Server, logger logx.Logger, msg string, errCh chan<- error) {
	go func() {
		logger.Info(msg, logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

// drainNotifications waits for pending notifications before the producer
// they are sent through is closed.
func drainNotifications(svc *assignment.Service, logger logx.Logger, timeout time.Duration) {
	if svc == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := svc.Drain(ctx); err != nil {
		logger.Error("notification drain error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, producer *kafka.Producer, rdb *redis.Client, logger logx.Logger) {
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka producer close error", logx.Err(err))
		}
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
