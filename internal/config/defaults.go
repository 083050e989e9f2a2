package config

import "time"

const defaultPort = 8080

const defaultOperationTimeout = 3 * time.Second

const defaultLogLevel = "info"

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "ecodeli",
}

var defaultKafka = Kafka{
	GroupID:            "ecodeli-dispatch-worker",
	RoutesTopic:        "planned-routes",
	NotificationsTopic: "notifications",
}

var defaultRedis = Redis{
	StorageTTL: 5 * time.Minute,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       20,
	Burst:      40,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultNotify = Notify{
	MaxAttempts: 3,
	BaseDelay:   100 * time.Millisecond,
	MaxDelay:    400 * time.Millisecond,
}

var defaultPprof = PprofConfig{
	Addr: "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultNotify returns the default notification retry settings.
func DefaultNotify() Notify {
	return defaultNotify
}
