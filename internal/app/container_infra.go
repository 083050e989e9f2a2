package app

import (
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"ecodeli-dispatch/internal/cache"
	"ecodeli-dispatch/internal/config"
	"ecodeli-dispatch/internal/logx"
	"ecodeli-dispatch/internal/notify"
	"ecodeli-dispatch/internal/repository"
	"ecodeli-dispatch/internal/service/assignment"
	"ecodeli-dispatch/internal/transport/kafka"
)

// newKafkaProducer returns nil when no brokers are configured.
func newKafkaProducer(cfg *config.Config) (*kafka.Producer, error) {
	return kafka.NewProducer(cfg.Kafka.Brokers)
}

// newRedisClient returns nil when no address is configured.
func newRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func newStorageCache(
	cfg *config.Config,
	client *redis.Client,
	repo *repository.StorageRepo,
	logger logx.Logger,
) *cache.StorageLocations {
	if client == nil {
		return cache.NewStorageLocations(nil, repo, cfg.Redis.StorageTTL, logger)
	}
	return cache.NewStorageLocations(client, repo, cfg.Redis.StorageTTL, logger)
}

type notifierIn struct {
	dig.In

	Config   *config.Config
	Producer *kafka.Producer
	Logger   logx.Logger
	Retries  prometheus.Counter `name:"notify_retries_total"`
}

// newNotifier publishes to Kafka with retries, or logs notifications when
// Kafka is disabled.
func newNotifier(in notifierIn) assignment.Notifier {
	if in.Producer == nil {
		return notify.NewLog(in.Logger)
	}
	pub := kafka.NewNotificationPublisher(in.Producer, in.Config.Kafka.NotificationsTopic)
	return notify.NewRetrying(pub, in.Logger, in.Retries, notify.RetryConfig{
		MaxAttempts: in.Config.Notify.MaxAttempts,
		BaseDelay:   in.Config.Notify.BaseDelay,
		MaxDelay:    in.Config.Notify.MaxDelay,
	})
}

func registerInfra(container *dig.Container) error {
	return provideAll(container,
		newKafkaProducer,
		newRedisClient,
		newNotifier,
	)
}
