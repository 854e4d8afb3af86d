package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/laiwenqiang/vps-stock-monitor/internal/api"
	"github.com/laiwenqiang/vps-stock-monitor/internal/engine"
	"github.com/laiwenqiang/vps-stock-monitor/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, telemetry.Config{
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      Version,
	}, logger)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("database ready", "driver", cfg.Database.Driver)

	registry := buildRegistry(cfg, logger)
	notifier := buildNotifier(cfg, logger)
	logger.Info("notification channels configured", "count", notifier.Len())

	eng := engine.NewEngine(s, registry, notifier,
		engine.WithLogger(logger),
		engine.WithNotifyPolicy(cfg.NotifyPolicy.Policy()),
		engine.WithMaxErrorCount(cfg.Monitor.MaxErrorCount),
		engine.WithStaggerOffset(cfg.Monitor.StaggerOffset),
		engine.WithHistoryRetention(cfg.Schedule.HistoryRetention),
	)

	sched, err := engine.NewScheduler(eng, cfg.Schedule.CheckInterval, cfg.Schedule.PruneInterval, logger)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	logger.Info("scheduler started",
		"check_interval", cfg.Schedule.CheckInterval,
		"prune_interval", cfg.Schedule.PruneInterval,
	)

	if cfg.Auth.APIKey == "" {
		logger.Warn("auth.api_key is not set; the management API will answer 503")
	}

	router := api.NewRouter(api.Deps{
		Store:     s,
		Providers: registry,
		Checker:   eng,
		APIKey:    cfg.Auth.APIKey,
		Version:   Version,
		Logger:    logger,
	})
	srv := api.Server(cfg.Server.Addr(), router, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Warn("check cycle still running at shutdown")
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
