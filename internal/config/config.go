// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/laiwenqiang/vps-stock-monitor/pkg/logger"
	domain "github.com/laiwenqiang/vps-stock-monitor/pkg/types"
)

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Auth          AuthConfig          `yaml:"auth"`
	Database      DatabaseConfig      `yaml:"database"`
	Monitor       MonitorConfig       `yaml:"monitor"`
	NotifyPolicy  NotifyPolicyConfig  `yaml:"notify_policy"`
	Schedule      ScheduleConfig      `yaml:"schedule"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Providers     []ProviderConfig    `yaml:"providers"`
	Logging       LoggingConfig       `yaml:"logging"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AuthConfig protects the management API. An empty APIKey leaves the API
// unavailable rather than open.
type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

// DatabaseConfig defines the storage backend. SQLite needs only Path;
// PostgreSQL uses the connection fields.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // postgres, sqlite
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// MonitorConfig controls how product pages are fetched and how failures
// are tolerated.
type MonitorConfig struct {
	RequestTimeout time.Duration   `yaml:"request_timeout"`
	UserAgent      string          `yaml:"user_agent"`
	RateLimit      RateLimitConfig `yaml:"rate_limit"`
	StaggerOffset  time.Duration   `yaml:"stagger_offset"`
	MaxErrorCount  int             `yaml:"max_error_count"`
}

// RateLimitConfig defines per-host request limits.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// NotifyPolicyConfig holds the global notification defaults. Unset fields
// fall back to domain.DefaultNotifyPolicy.
type NotifyPolicyConfig struct {
	NotifyOnRestock     *bool `yaml:"notify_on_restock"`
	NotifyOnOutOfStock  *bool `yaml:"notify_on_out_of_stock"`
	NotifyOnPriceChange *bool `yaml:"notify_on_price_change"`
	MinNotifyInterval   int   `yaml:"min_notify_interval"` // minutes
}

// Policy resolves the configured defaults.
func (n *NotifyPolicyConfig) Policy() domain.NotifyPolicy {
	p := domain.DefaultNotifyPolicy()
	if n.NotifyOnRestock != nil {
		p.NotifyOnRestock = *n.NotifyOnRestock
	}
	if n.NotifyOnOutOfStock != nil {
		p.NotifyOnOutOfStock = *n.NotifyOnOutOfStock
	}
	if n.NotifyOnPriceChange != nil {
		p.NotifyOnPriceChange = *n.NotifyOnPriceChange
	}
	if n.MinNotifyInterval > 0 {
		p.MinNotifyInterval = n.MinNotifyInterval
	}
	return p
}

// ScheduleConfig defines cron intervals and history retention.
type ScheduleConfig struct {
	CheckInterval    time.Duration `yaml:"check_interval"`
	PruneInterval    time.Duration `yaml:"prune_interval"`
	HistoryRetention time.Duration `yaml:"history_retention"`
}

// NotificationsConfig defines notification channels.
type NotificationsConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Discord  DiscordConfig  `yaml:"discord"`
	Console  ConsoleConfig  `yaml:"console"`
}

// TelegramConfig defines Telegram bot settings.
type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
	APIBase  string `yaml:"api_base"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url"`
}

// ConsoleConfig writes notifications to the log. It is enabled
// automatically when no other channel is.
type ConsoleConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ProviderConfig declares an additional host-matched provider.
type ProviderConfig struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Domains []string `yaml:"domains"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// TelemetryConfig enables OTLP export when OTLPEndpoint is set.
type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	Insecure     bool   `yaml:"insecure"`
	ServiceName  string `yaml:"service_name"`
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML config bytes, expanding environment variables first.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied, suitable for
// a local SQLite deployment.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyMonitorDefaults(&cfg.Monitor)
	applyScheduleDefaults(&cfg.Schedule)
	applyNotificationDefaults(&cfg.Notifications)
	applyLoggingDefaults(&cfg.Logging)
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "vps-stock-monitor"
	}
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		// A manual check of every target runs inside one request.
		s.WriteTimeout = 5 * time.Minute
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = DriverSQLite
	}
	if d.Path == "" {
		d.Path = "vps-stock-monitor.db"
	}
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyMonitorDefaults(m *MonitorConfig) {
	if m.RequestTimeout == 0 {
		m.RequestTimeout = 10 * time.Second
	}
	if m.RateLimit.PerSecond == 0 {
		m.RateLimit.PerSecond = 1
	}
	if m.RateLimit.Burst == 0 {
		m.RateLimit.Burst = 2
	}
	if m.StaggerOffset == 0 {
		m.StaggerOffset = 2 * time.Second
	}
	if m.MaxErrorCount == 0 {
		m.MaxErrorCount = 5
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.CheckInterval == 0 {
		s.CheckInterval = 5 * time.Minute
	}
	if s.PruneInterval == 0 {
		s.PruneInterval = 24 * time.Hour
	}
	if s.HistoryRetention == 0 {
		s.HistoryRetention = 30 * 24 * time.Hour
	}
}

func applyNotificationDefaults(n *NotificationsConfig) {
	if !n.Telegram.Enabled && !n.Discord.Enabled {
		n.Console.Enabled = true
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = logger.FormatText
	}
}

func validate(cfg *Config) error {
	var errs []error

	switch cfg.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.Database.Host == "" {
			errs = append(errs, fmt.Errorf("database.host is required when driver is postgres"))
		}
		if cfg.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database.name is required when driver is postgres"))
		}
		if cfg.Database.User == "" {
			errs = append(errs, fmt.Errorf("database.user is required when driver is postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf(
			"database.driver must be one of: postgres, sqlite (got %q)", cfg.Database.Driver,
		))
	}

	if cfg.Monitor.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("monitor.request_timeout must not be negative"))
	}
	if cfg.Monitor.MaxErrorCount < 0 {
		errs = append(errs, fmt.Errorf("monitor.max_error_count must not be negative"))
	}
	if cfg.NotifyPolicy.MinNotifyInterval < 0 {
		errs = append(errs, fmt.Errorf("notify_policy.min_notify_interval must not be negative"))
	}
	if cfg.Schedule.CheckInterval < time.Minute {
		errs = append(errs, fmt.Errorf(
			"schedule.check_interval must be at least 1m (got %s)", cfg.Schedule.CheckInterval,
		))
	}

	if t := cfg.Notifications.Telegram; t.Enabled {
		if t.BotToken == "" || t.ChatID == "" {
			errs = append(errs, fmt.Errorf(
				"notifications.telegram.bot_token and chat_id are required when telegram is enabled",
			))
		}
	}
	if d := cfg.Notifications.Discord; d.Enabled {
		if u, err := url.Parse(d.WebhookURL); err != nil || !u.IsAbs() {
			errs = append(errs, fmt.Errorf(
				"notifications.discord.webhook_url must be an absolute URL when discord is enabled",
			))
		}
	}

	errs = append(errs, validateProviders(cfg.Providers)...)

	if !logger.ValidLevel(cfg.Logging.Level) {
		errs = append(errs, fmt.Errorf(
			"logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level,
		))
	}
	if !logger.ValidFormat(cfg.Logging.Format) {
		errs = append(errs, fmt.Errorf(
			"logging.format must be one of: text, json (got %q)", cfg.Logging.Format,
		))
	}

	return errors.Join(errs...)
}

func validateProviders(providers []ProviderConfig) []error {
	var errs []error
	seen := map[string]bool{"dmit": true}

	for i, p := range providers {
		id := strings.TrimSpace(p.ID)
		switch {
		case id == "":
			errs = append(errs, fmt.Errorf("providers[%d].id is required", i))
		case seen[id]:
			errs = append(errs, fmt.Errorf("providers[%d].id %q is already registered", i, id))
		}
		seen[id] = true

		if len(p.Domains) == 0 {
			errs = append(errs, fmt.Errorf("providers[%d].domains must not be empty", i))
		}
	}

	return errs
}
