package config

import (
	"strings"

	"github.com/Skotchmaster/restaurant/pkg/config"
	pkgdb "github.com/Skotchmaster/restaurant/pkg/db"
)

const (
	SessionCookie = "cookie"
	SessionRedis  = "redis"

	EventsNone     = "none"
	EventsKafka    = "kafka"
	EventsRabbitMQ = "rabbitmq"
)

type ServiceConfig struct {
	config.Config
}

func (c ServiceConfig) SearchEnabled() bool {
	return c.ESURL != ""
}

func Load() ServiceConfig {
	config.LoadDotEnv()
	cfg := config.Load()

	cfg.DBDriver = strings.ToLower(cfg.DBDriver)
	cfg.SessionStore = strings.ToLower(cfg.SessionStore)
	cfg.EventsDriver = strings.ToLower(cfg.EventsDriver)

	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustOneOf(cfg.DBDriver, "DB_DRIVER", pkgdb.DriverPostgres, pkgdb.DriverSQLite)
	config.MustOneOf(cfg.SessionStore, "SESSION_STORE", SessionCookie, SessionRedis)
	config.MustOneOf(cfg.EventsDriver, "EVENTS_DRIVER", EventsNone, EventsKafka, EventsRabbitMQ)

	if cfg.SessionStore == SessionCookie {
		config.MustNonEmptyBytes(cfg.SessionSecret, "SESSION_SECRET")
	}
	switch cfg.EventsDriver {
	case EventsKafka:
		if len(cfg.KafkaBrokers) == 0 {
			config.MustNonEmpty("", "KAFKA_BROKERS")
		}
	case EventsRabbitMQ:
		config.MustNonEmpty(cfg.AMQPURL, "AMQP_URL")
	}

	return ServiceConfig{Config: cfg}
}
