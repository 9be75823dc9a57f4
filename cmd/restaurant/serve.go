package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Skotchmaster/restaurant/internal/httpserver"
	"github.com/Skotchmaster/restaurant/internal/repo"
	"github.com/Skotchmaster/restaurant/internal/service"
	"github.com/Skotchmaster/restaurant/pkg/metrics"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot()
		if err != nil {
			return err
		}
		defer a.close()
		return a.serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "auto-migrate the schema before serving")
}

func (a *app) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	l := a.logger

	r := &repo.GormRepo{DB: a.db}
	if autoMigrate {
		if err := r.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pub, err := a.publisher()
	if err != nil {
		return fmt.Errorf("events: %w", err)
	}
	defer pub.Close()

	store, closeStore, err := a.sessions()
	if err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	defer closeStore()

	m := metrics.New("restaurant")
	n := service.Notifier{Events: pub, Metrics: m}

	menu := &service.MenuService{Repo: r, Notifier: n}
	idx, err := a.menuIndex(ctx)
	if err != nil {
		l.Warn("search_disabled", "reason", "elasticsearch unavailable", "error", err)
	} else if idx != nil {
		menu.Index = idx
	}

	e := httpserver.New(httpserver.Options{
		Logger:      l,
		Sessions:    store,
		CORSOrigins: a.cfg.CORSOrigins,
	}, &httpserver.Deps{
		DB:        a.db,
		Metrics:   m,
		Menu:      &httpserver.MenuHTTP{Svc: menu},
		Customers: &httpserver.CustomerHTTP{Svc: &service.CustomerService{Repo: r, Notifier: n}},
		Orders:    &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Notifier: n}},
		Auth:      &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, Notifier: n}},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Warn("shutdown_failed", "error", err)
	}

	l.Info("stopped")
	return nil
}
