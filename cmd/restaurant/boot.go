package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	appcfg "github.com/Skotchmaster/restaurant/internal/config"
	"github.com/Skotchmaster/restaurant/internal/search"
	"github.com/Skotchmaster/restaurant/internal/session"
	pkgdb "github.com/Skotchmaster/restaurant/pkg/db"
	"github.com/Skotchmaster/restaurant/pkg/events"
	"github.com/Skotchmaster/restaurant/pkg/logging"
)

type app struct {
	cfg    appcfg.ServiceConfig
	logger *slog.Logger
	db     *gorm.DB
}

func boot() (*app, error) {
	cfg := appcfg.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := pkgdb.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	return &app{cfg: cfg, logger: logger, db: db}, nil
}

func (a *app) close() {
	if err := pkgdb.Close(a.db); err != nil {
		a.logger.Warn("db_close_failed", "error", err)
	}
}

func (a *app) publisher() (events.Publisher, error) {
	switch a.cfg.EventsDriver {
	case appcfg.EventsKafka:
		return events.NewKafkaPublisher(a.cfg.KafkaBrokers)
	case appcfg.EventsRabbitMQ:
		return events.NewAMQPPublisher(a.cfg.AMQPURL, events.DefaultExchange)
	default:
		return events.Nop{}, nil
	}
}

func (a *app) sessions() (session.Store, func() error, error) {
	switch a.cfg.SessionStore {
	case appcfg.SessionRedis:
		store := session.NewRedisStore(a.cfg.RedisAddr, a.cfg.RedisPassword, a.cfg.SessionTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return store, store.Close, nil
	default:
		store, err := session.NewCookieStore(a.cfg.SessionSecret, a.cfg.SessionTTL)
		if err != nil {
			return nil, nil, err
		}
		return store, func() error { return nil }, nil
	}
}

// menuIndex returns nil when search is not configured.
func (a *app) menuIndex(ctx context.Context) (*search.MenuIndex, error) {
	if !a.cfg.SearchEnabled() {
		return nil, nil
	}
	idx, err := search.NewMenuIndex(logging.IntoContext(ctx, a.logger), search.Config{
		URL:      a.cfg.ESURL,
		User:     a.cfg.ESUser,
		Password: a.cfg.ESPassword,
		Index:    a.cfg.ESIndex,
	})
	if err != nil {
		return nil, err
	}
	if err := idx.EnsureIndex(ctx); err != nil {
		return nil, err
	}
	return idx, nil
}
