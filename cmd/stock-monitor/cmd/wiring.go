package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/laiwenqiang/vps-stock-monitor/internal/config"
	"github.com/laiwenqiang/vps-stock-monitor/internal/notify"
	"github.com/laiwenqiang/vps-stock-monitor/internal/provider"
	"github.com/laiwenqiang/vps-stock-monitor/internal/store"
)

// openStore connects to the configured backend. It does not migrate.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		s, err := store.NewPostgresStore(ctx, cfg.Database.DSN(),
			store.WithPoolSize(int32(cfg.Database.PoolSize))) //nolint:gosec // validated small value
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		return s, nil
	case config.DriverSQLite:
		s, err := store.NewSQLiteStore(ctx, cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// buildRegistry registers the built-in DMIT provider followed by the
// configured host providers, all sharing one rate-limited fetcher.
func buildRegistry(cfg *config.Config, log *slog.Logger) *provider.Registry {
	m := cfg.Monitor
	fetcherOpts := []provider.FetcherOption{
		provider.WithTimeout(m.RequestTimeout),
		provider.WithHostRateLimit(m.RateLimit.PerSecond, m.RateLimit.Burst),
	}
	if m.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, provider.WithUserAgent(m.UserAgent))
	}
	fetcher := provider.NewFetcher(fetcherOpts...)

	opts := []provider.HostProviderOption{
		provider.WithFetcher(fetcher),
		provider.WithLogger(log),
	}

	reg := provider.NewRegistry(provider.NewDmitProvider(opts...))
	for _, p := range cfg.Providers {
		name := p.Name
		if name == "" {
			name = p.ID
		}
		if !reg.Register(provider.NewHostProvider(p.ID, name, p.Domains, opts...)) {
			log.Warn("duplicate provider ignored", "provider", p.ID)
		}
	}
	return reg
}

// buildNotifier fans out to every enabled channel.
func buildNotifier(cfg *config.Config, log *slog.Logger) *notify.Multi {
	n := cfg.Notifications
	var notifiers []notify.Notifier

	if n.Telegram.Enabled {
		var opts []notify.TelegramOption
		if n.Telegram.APIBase != "" {
			opts = append(opts, notify.WithTelegramAPIBase(n.Telegram.APIBase))
		}
		notifiers = append(notifiers, notify.NewTelegramNotifier(n.Telegram.BotToken, n.Telegram.ChatID, opts...))
	}
	if n.Discord.Enabled {
		notifiers = append(notifiers, notify.NewDiscordNotifier(n.Discord.WebhookURL))
	}
	if n.Console.Enabled {
		notifiers = append(notifiers, notify.NewLogNotifier(log))
	}

	return notify.NewMulti(log, notifiers...)
}
