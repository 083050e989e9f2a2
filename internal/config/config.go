package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"ecodeli-dispatch/internal/logx"
)

// Config stores service settings.
type Config struct {
	Port             int
	DB               DB
	Kafka            Kafka
	Redis            Redis
	RateLimit        RateLimit
	Notify           Notify
	Pprof            PprofConfig
	OperationTimeout time.Duration
	Migrate          bool
	LogLevel         string
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		d.User, d.Pass, net.JoinHostPort(d.Host, d.Port), d.Name)
}

// Kafka stores broker and topic settings. Empty Brokers disables Kafka.
type Kafka struct {
	Brokers            []string
	GroupID            string
	RoutesTopic        string
	NotificationsTopic string
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// Redis stores cache settings. Empty Addr disables caching.
type Redis struct {
	Addr       string
	Password   string
	DB         int
	StorageTTL time.Duration
}

// RateLimit stores per-client token bucket settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Notify stores notification publishing retry settings.
type Notify struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// PprofConfig stores the debug profiling server settings.
type PprofConfig struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:             defaultPort,
		DB:               defaultDB,
		Kafka:            defaultKafka,
		Redis:            defaultRedis,
		RateLimit:        defaultRateLimit,
		Notify:           defaultNotify,
		Pprof:            defaultPprof,
		OperationTimeout: defaultOperationTimeout,
		LogLevel:         defaultLogLevel,
	}

	if err := loadEnv(cfg); err != nil {
		return nil, err
	}

	brokers := strings.Join(cfg.Kafka.Brokers, ",")
	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&brokers, "kafka-brokers", brokers, "comma separated kafka brokers")
	pflag.StringVar(&cfg.Redis.Addr, "redis-addr", cfg.Redis.Addr, "redis address for the storage cache")
	pflag.BoolVar(&cfg.Migrate, "migrate", cfg.Migrate, "apply the database schema on startup")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	cfg.Kafka.Brokers = splitList(brokers)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Notify.MaxAttempts <= 0 {
		return nil, fmt.Errorf("invalid notify attempts: %d", cfg.Notify.MaxAttempts)
	}
	if _, ok := logx.ParseLevel(cfg.LogLevel); !ok {
		return nil, fmt.Errorf("invalid log level: %q", cfg.LogLevel)
	}
	return cfg, nil
}

func loadEnv(cfg *Config) error {
	var err error
	if v := os.Getenv("PORT"); v != "" {
		if cfg.Port, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid PORT: %w", err)
		}
	}

	setString(&cfg.DB.Host, "POSTGRES_HOST")
	setString(&cfg.DB.User, "POSTGRES_USER")
	setString(&cfg.DB.Pass, "POSTGRES_PASSWORD")
	setString(&cfg.DB.Name, "POSTGRES_DB")
	if v := os.Getenv("POSTGRES_PORT"); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid POSTGRES_PORT: %w", err)
		}
		cfg.DB.Port = v
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	setString(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")
	setString(&cfg.Kafka.RoutesTopic, "KAFKA_ROUTES_TOPIC")
	setString(&cfg.Kafka.NotificationsTopic, "KAFKA_NOTIFICATIONS_TOPIC")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		if cfg.Redis.DB, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid REDIS_DB: %w", err)
		}
	}
	if err := setDuration(&cfg.Redis.StorageTTL, "REDIS_STORAGE_TTL"); err != nil {
		return err
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if cfg.RateLimit.Enabled, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_ENABLED: %w", err)
		}
	}
	if v := os.Getenv("RATE_LIMIT_RATE"); v != "" {
		if cfg.RateLimit.Rate, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RATE: %w", err)
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if cfg.RateLimit.Burst, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
		}
	}

	if v := os.Getenv("NOTIFY_MAX_ATTEMPTS"); v != "" {
		if cfg.Notify.MaxAttempts, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("invalid NOTIFY_MAX_ATTEMPTS: %w", err)
		}
	}
	if err := setDuration(&cfg.Notify.BaseDelay, "NOTIFY_BASE_DELAY"); err != nil {
		return err
	}
	if err := setDuration(&cfg.Notify.MaxDelay, "NOTIFY_MAX_DELAY"); err != nil {
		return err
	}
	if err := setDuration(&cfg.OperationTimeout, "OPERATION_TIMEOUT"); err != nil {
		return err
	}

	if v := os.Getenv("PPROF_ENABLED"); v != "" {
		if cfg.Pprof.Enabled, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("invalid PPROF_ENABLED: %w", err)
		}
	}
	setString(&cfg.Pprof.Addr, "PPROF_ADDR")
	setString(&cfg.Pprof.User, "PPROF_USER")
	setString(&cfg.Pprof.Pass, "PPROF_PASS")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("DB_MIGRATE"); v != "" {
		if cfg.Migrate, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("invalid DB_MIGRATE: %w", err)
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
