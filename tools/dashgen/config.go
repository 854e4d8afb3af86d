package main

import "errors"

// KnownMetrics is the set of metric names exported by vps-stock-monitor
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"vsm_http_request_duration_seconds": true,
	"vsm_http_requests_total":           true,

	// Health metrics.
	"vsm_healthz_up": true,
	"vsm_readyz_up":  true,

	// Fetch metrics.
	"vsm_fetch_duration_seconds": true,
	"vsm_fetch_errors_total":     true,
	"vsm_parse_strategy_total":   true,

	// Check cycle metrics.
	"vsm_checks_total":                 true,
	"vsm_check_cycle_duration_seconds": true,
	"vsm_targets_in_stock":             true,
	"vsm_targets_auto_disabled_total":  true,
	"vsm_history_pruned_total":         true,

	// Scheduler metrics.
	"vsm_scheduler_next_check_timestamp": true,
	"vsm_scheduler_next_prune_timestamp": true,

	// Notification metrics.
	"vsm_notifications_sent_total":      true,
	"vsm_notification_failures_total":   true,
	"vsm_notification_duration_seconds": true,

	// Recording rules.
	"vsm:http_requests:rate5m":         true,
	"vsm:http_errors:rate5m":           true,
	"vsm:checks:rate5m":                true,
	"vsm:check_errors:rate5m":          true,
	"vsm:fetch_errors:rate5m":          true,
	"vsm:notification_duration:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
