// Package domain defines the core business types for the stock monitor.
package domain

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

// SourceType selects how a fetched response body is interpreted.
type SourceType string

// Source type constants. An empty SourceType behaves like SourceAuto.
const (
	SourceAuto SourceType = "auto"
	SourceAPI  SourceType = "api"
	SourceJSON SourceType = "json"
	SourceHTML SourceType = "html"
)

var validSourceTypes = []SourceType{SourceAuto, SourceAPI, SourceJSON, SourceHTML}

// Valid reports whether s is empty or one of the known source types.
func (s SourceType) Valid() bool {
	return s == "" || slices.Contains(validSourceTypes, s)
}

// MonitorTarget is a product page (or API endpoint) that is checked
// periodically for stock changes.
type MonitorTarget struct {
	ID         string     `json:"id"                    db:"id"`
	Provider   string     `json:"provider"              db:"provider"`
	URL        string     `json:"url"                   db:"url"`
	Name       string     `json:"name,omitempty"        db:"name"`
	Region     string     `json:"region,omitempty"      db:"region"`
	Plan       string     `json:"plan,omitempty"        db:"plan"`
	SourceType SourceType `json:"source_type,omitempty" db:"source_type"`
	Enabled    bool       `json:"enabled"               db:"enabled"`

	// Notification overrides; nil falls back to the global NotifyPolicy.
	NotifyOnRestock     *bool `json:"notify_on_restock,omitempty"      db:"notify_on_restock"`
	NotifyOnOutOfStock  *bool `json:"notify_on_out_of_stock,omitempty" db:"notify_on_out_of_stock"`
	NotifyOnPriceChange *bool `json:"notify_on_price_change,omitempty" db:"notify_on_price_change"`
	MinNotifyInterval   *int  `json:"min_notify_interval,omitempty"    db:"min_notify_interval"` // minutes

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DisplayName returns the target name, falling back to its URL.
func (t *MonitorTarget) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.URL
}

// Host returns the lower-cased hostname of the target URL.
func (t *MonitorTarget) Host() (string, error) {
	u, err := url.Parse(t.URL)
	if err != nil {
		return "", fmt.Errorf("parsing target url: %w", err)
	}
	if !u.IsAbs() || u.Hostname() == "" {
		return "", fmt.Errorf("target url %q is not absolute", t.URL)
	}
	return strings.ToLower(u.Hostname()), nil
}

// StockStatus is the normalized result of a single successful check.
// Qty and Price are nil when the source did not report them.
type StockStatus struct {
	InStock   bool      `json:"in_stock"`
	Qty       *float64  `json:"qty,omitempty"`
	Price     *float64  `json:"price,omitempty"`
	Region    string    `json:"region,omitempty"`
	RawSource string    `json:"raw_source,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// MonitorState tracks the outcome of the most recent checks for a target.
type MonitorState struct {
	TargetID       string       `json:"target_id"                  db:"target_id"`
	LastStatus     *StockStatus `json:"last_status,omitempty"      db:"last_status"`
	LastCheckedAt  *time.Time   `json:"last_checked_at,omitempty"  db:"last_checked_at"`
	LastNotifiedAt *time.Time   `json:"last_notified_at,omitempty" db:"last_notified_at"`
	ErrorCount     int          `json:"error_count"                db:"error_count"`
	LastError      string       `json:"last_error,omitempty"       db:"last_error"`
}

// CheckRecord is one entry of the check history.
type CheckRecord struct {
	ID         string       `json:"id"                    db:"id"`
	TargetID   string       `json:"target_id"             db:"target_id"`
	Timestamp  time.Time    `json:"timestamp"             db:"checked_at"`
	Status     *StockStatus `json:"status,omitempty"      db:"status"`
	Error      string       `json:"error,omitempty"       db:"error_text"`
	DurationMS int64        `json:"duration_ms,omitempty" db:"duration_ms"`
}

// NotifyRecord is one entry of the notification history.
type NotifyRecord struct {
	ID        string    `json:"id"                db:"id"`
	TargetID  string    `json:"target_id"         db:"target_id"`
	Timestamp time.Time `json:"timestamp"         db:"notified_at"`
	Reason    string    `json:"reason"            db:"reason"`
	Message   string    `json:"message,omitempty" db:"message"`
}

// NotifyPolicy holds the global notification defaults that targets may
// override.
type NotifyPolicy struct {
	NotifyOnRestock     bool `json:"notify_on_restock"      yaml:"notify_on_restock"`
	NotifyOnOutOfStock  bool `json:"notify_on_out_of_stock" yaml:"notify_on_out_of_stock"`
	NotifyOnPriceChange bool `json:"notify_on_price_change" yaml:"notify_on_price_change"`
	MinNotifyInterval   int  `json:"min_notify_interval"    yaml:"min_notify_interval"` // minutes
}

// DefaultNotifyPolicy returns the built-in notification defaults.
func DefaultNotifyPolicy() NotifyPolicy {
	return NotifyPolicy{
		NotifyOnRestock:     true,
		NotifyOnOutOfStock:  false,
		NotifyOnPriceChange: false,
		MinNotifyInterval:   60,
	}
}

// Resolve merges the per-target overrides of t over p.
func (p NotifyPolicy) Resolve(t *MonitorTarget) NotifyPolicy {
	out := p
	if t.NotifyOnRestock != nil {
		out.NotifyOnRestock = *t.NotifyOnRestock
	}
	if t.NotifyOnOutOfStock != nil {
		out.NotifyOnOutOfStock = *t.NotifyOnOutOfStock
	}
	if t.NotifyOnPriceChange != nil {
		out.NotifyOnPriceChange = *t.NotifyOnPriceChange
	}
	if t.MinNotifyInterval != nil && *t.MinNotifyInterval > 0 {
		out.MinNotifyInterval = *t.MinNotifyInterval
	}
	return out
}
